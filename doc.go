// Package mandala generates and animates parametric radial compositions
// driven by biometric input.
//
// Six bounded numeric inputs (heart rate, sleep hours, step count, mood,
// stress, energy) map deterministically to a layered radial scene graph:
// layer count, elements per layer, shape family, size, color, rotation.
// A separate evolver turns elapsed time plus the current biometrics into
// per-frame transform deltas (counter-rotation, breathing scale, energy
// pulse). The package defines the scene model and the update rules; any 2D
// vector backend can consume them.
//
// # Quick start
//
// The simplest way to see a mandala is [Run], which creates a window and
// game loop around an [Engine]:
//
//	engine := mandala.NewEngine(mandala.EngineConfig{
//		Viewport: mandala.Viewport{Width: 800, Height: 800},
//	})
//	mandala.Run(engine, mandala.RunConfig{
//		Title: "Mandala", Width: 800, Height: 800,
//	})
//
// For full control, drive the engine yourself: call
// [Engine.UpdateBiometrics] and [Engine.OnResize] from your UI layer, call
// [Engine.Update] once per frame, and consume scenes and deltas through
// [Engine.OnSceneReady] and [Engine.OnFrame].
//
// # Core contracts
//
// Two pure functions sit at the center. [Generator.Generate] maps a
// [Biometrics] record and a [Viewport] to a [SceneGraph] snapshot; identical
// inputs yield structurally identical scenes (per-element jitter is seeded
// from the biometrics). [Evolver.Tick] maps a scene, the biometrics, and
// elapsed milliseconds to [FrameDeltas]; it is throttled to a target rate
// and backs off entirely below a frame-rate floor.
//
// Regeneration is coalesced by [Scheduler]: at most one generation is in
// flight, a burst of requests collapses to a single follow-up run using the
// latest biometrics, and scenes are handed off atomically.
package mandala
