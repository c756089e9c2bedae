// Package gui renders stored trajectories in a raylib window.
package gui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/mdsim/internal/sim"
	"github.com/san-kum/mdsim/internal/storage"
)

var (
	colBg   = rl.NewColor(10, 10, 10, 255)
	colBox  = rl.NewColor(60, 60, 60, 255)
	colText = rl.NewColor(140, 140, 140, 255)
)

// Run opens a window and replays the trajectory as spheres inside a
// wireframe box with an orbiting camera. Space pauses, left/right scrub,
// R restarts; it returns when the window closes.
func Run(meta *storage.RunMetadata, traj sim.Trajectory) {
	rl.InitWindow(1280, 720, "mdsim")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	box := float32(meta.Box)
	center := rl.NewVector3(box/2, box/2, box/2)
	camera := rl.NewCamera3D(
		rl.NewVector3(box*1.9, box*1.4, box*1.9),
		center,
		rl.NewVector3(0, 1, 0),
		45.0,
		rl.CameraPerspective,
	)

	radius := float32(meta.Sigma) * 0.4
	frame := 0
	playing := true

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeySpace) {
			playing = !playing
		}
		if rl.IsKeyPressed(rl.KeyR) {
			frame = 0
		}
		if rl.IsKeyDown(rl.KeyRight) && frame < len(traj)-1 {
			playing = false
			frame++
		}
		if rl.IsKeyDown(rl.KeyLeft) && frame > 0 {
			playing = false
			frame--
		}

		rl.UpdateCamera(&camera, rl.CameraOrbital)

		rl.BeginDrawing()
		rl.ClearBackground(colBg)

		rl.BeginMode3D(camera)
		rl.DrawCubeWires(center, box, box, box, colBox)
		if len(traj) > 0 {
			drawFrame(traj, frame, radius, meta.Dt)
		}
		rl.EndMode3D()

		status := "playing"
		if !playing {
			status = "paused"
		}
		rl.DrawText(meta.ID, 20, 20, 20, colText)
		rl.DrawText(fmt.Sprintf("frame %d/%d (%s)", frame+1, len(traj), status), 20, 46, 20, colText)
		rl.DrawText("space pause | arrows scrub | r restart", 20, 680, 20, colText)
		rl.EndDrawing()

		if playing && frame < len(traj)-1 {
			frame++
		}
	}
}

// drawFrame renders one snapshot, shading each sphere by its apparent speed
// against the previous frame so fast particles stand out.
func drawFrame(traj sim.Trajectory, frame int, radius float32, dt float64) {
	for i, pos := range traj[frame] {
		shade := uint8(160)
		if frame > 0 && dt > 0 {
			speed := traj[frame][i].Sub(traj[frame-1][i]).Norm() / dt
			shade = uint8(math.Min(100+speed*40, 255))
		}
		center := rl.NewVector3(float32(pos[0]), float32(pos[1]), float32(pos[2]))
		rl.DrawSphere(center, radius, rl.NewColor(shade, shade, shade, 255))
	}
}
