package blockstate

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ModelState is the transform a variant applies to its model.
// It is either a Rotation or a Transform.
type ModelState interface {
	Matrix() mgl32.Mat4
	modelState()
}

// Rotation is a block model rotation in whole quarter turns around the block centre.
type Rotation struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// NewRotation validates x and y the way block models expect them.
func NewRotation(x, y int) (Rotation, error) {
	if !quarterTurn(x) || !quarterTurn(y) {
		return Rotation{}, fmt.Errorf("invalid model rotation x: %d, y: %d", x, y)
	}
	return Rotation{X: x, Y: y}, nil
}

func quarterTurn(deg int) bool {
	return deg >= 0 && deg < 360 && deg%90 == 0
}

// Matrix rotates around X first, then Y, both about (0.5, 0.5, 0.5).
func (r Rotation) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(0.5, 0.5, 0.5).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(float32(-r.Y)))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(float32(-r.X)))).
		Mul4(mgl32.Translate3D(-0.5, -0.5, -0.5))
}

func (Rotation) modelState() {}

// Transform is a translation, left rotation, scale, right rotation chain.
type Transform struct {
	Translation   mgl32.Vec3
	LeftRotation  mgl32.Quat
	Scale         mgl32.Vec3
	RightRotation mgl32.Quat
}

// Identity returns the transform that leaves a model untouched.
func Identity() Transform {
	return Transform{
		LeftRotation:  mgl32.QuatIdent(),
		Scale:         mgl32.Vec3{1, 1, 1},
		RightRotation: mgl32.QuatIdent(),
	}
}

// Matrix applies the right rotation first and the translation last.
func (t Transform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Translation[0], t.Translation[1], t.Translation[2]).
		Mul4(t.LeftRotation.Mat4()).
		Mul4(mgl32.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2])).
		Mul4(t.RightRotation.Mat4())
}

func (Transform) modelState() {}
