package material

import (
	"math"
	"testing"

	"render-engine/geometry"
)

func TestLambertianScatterFacesNormal(t *testing.T) {
	sampler := geometry.NewSampler(7)
	m := NewLambertian(geometry.NewDirection(0.8, 0.3, 0.3), sampler)

	rec := &HitRecord{
		P:      geometry.NewPoint(0, 0, 0),
		Normal: geometry.NewDirection(0, 1, 0),
	}
	rIn := geometry.NewRay(geometry.NewPoint(0, -1, 0), geometry.NewDirection(0, 1, 0))

	for i := 0; i < 50; i++ {
		var attenuation geometry.Vector
		var scattered geometry.Ray
		ok := m.Scatter(rIn, rec, &attenuation, &scattered)
		if !ok {
			t.Fatalf("Lambertian.Scatter should always return true")
		}
		if scattered.Direction.Dot(rec.Normal) < -1e-9 {
			t.Errorf("scattered direction has negative dot with normal: %v", scattered.Direction.Dot(rec.Normal))
		}
	}
}

func TestSpecularReflectsAboutNormal(t *testing.T) {
	m := NewSpecular(geometry.NewDirection(1, 1, 1))
	rec := &HitRecord{
		P:      geometry.NewPoint(0, 0, 0),
		Normal: geometry.NewDirection(0, 1, 0),
	}
	rIn := geometry.NewRay(geometry.NewPoint(0, 1, 0), geometry.NewDirection(1, -1, 0))

	var attenuation geometry.Vector
	var scattered geometry.Ray
	m.Scatter(rIn, rec, &attenuation, &scattered)

	want := geometry.NewDirection(1, 1, 0)
	if math.Abs(scattered.Direction.X()-want.X()) > 1e-9 || math.Abs(scattered.Direction.Y()-want.Y()) > 1e-9 {
		t.Errorf("Reflect: expected (1,1,0), got (%v,%v,%v)", scattered.Direction.X(), scattered.Direction.Y(), scattered.Direction.Z())
	}
}

func TestDielectricTotalInternalReflectionMatchesMirror(t *testing.T) {
	// sin_t = sin_i/eta, so a grazing angle (sin_i ≈ 1) with eta below 1
	// forces sin_t >= 1.
	normal := geometry.NewDirection(0, 1, 0)
	incoming := geometry.NewDirection(1, -0.01, 0).Normalize()
	eta := 0.4

	got := Refract(incoming, normal, eta)
	want := Reflect(incoming, normal)

	if math.Abs(got.X()-want.X()) > 1e-9 || math.Abs(got.Y()-want.Y()) > 1e-9 {
		t.Errorf("TIR: expected mirror direction (%v,%v), got (%v,%v)", want.X(), want.Y(), got.X(), got.Y())
	}
}

func TestDielectricRefractsToCorrectSide(t *testing.T) {
	normal := geometry.NewDirection(0, 1, 0)
	incoming := geometry.NewDirection(0, -1, 0) // straight down, entering
	eta := 1.5

	refracted := Refract(incoming, normal, eta)
	if refracted.Dot(normal) >= 0 {
		t.Errorf("expected transmitted ray to continue through the surface, dot=%v", refracted.Dot(normal))
	}
}

func TestDielectricScatterInvertsEtaOnExit(t *testing.T) {
	normal := geometry.NewDirection(0, 1, 0)
	incoming := geometry.NewDirection(0.3, -1, 0).Normalize()
	m := NewDielectric(geometry.NewDirection(1, 1, 1), 1.5)

	enteringRec := &HitRecord{P: geometry.NewPoint(0, 0, 0), Normal: normal, FrontFace: true}
	var attenuation geometry.Vector
	var entering geometry.Ray
	m.Scatter(geometry.NewRay(geometry.NewPoint(0, 1, 0), incoming), enteringRec, &attenuation, &entering)

	wantEntering := Refract(incoming, normal, m.Eta)
	if entering.Direction != wantEntering {
		t.Errorf("entering hit: expected Scatter to use Eta directly, got %v want %v", entering.Direction, wantEntering)
	}

	exitingRec := &HitRecord{P: geometry.NewPoint(0, 0, 0), Normal: normal, FrontFace: false}
	var exiting geometry.Ray
	m.Scatter(geometry.NewRay(geometry.NewPoint(0, 1, 0), incoming), exitingRec, &attenuation, &exiting)

	wantExiting := Refract(incoming, normal, 1/m.Eta)
	if exiting.Direction != wantExiting {
		t.Errorf("exiting hit: expected Scatter to use 1/Eta, got %v want %v", exiting.Direction, wantExiting)
	}

	if exiting.Direction == entering.Direction {
		t.Errorf("expected entering and exiting refraction to differ for eta=%v", m.Eta)
	}
}

func TestDiffuseEmitterNeverScatters(t *testing.T) {
	m := NewDiffuseEmitter(geometry.NewDirection(1, 1, 1))
	rec := &HitRecord{P: geometry.NewPoint(0, 0, 0), Normal: geometry.NewDirection(0, 1, 0)}
	rIn := geometry.NewRay(geometry.NewPoint(0, 1, 0), geometry.NewDirection(0, -1, 0))

	var attenuation geometry.Vector
	var scattered geometry.Ray
	if m.Scatter(rIn, rec, &attenuation, &scattered) {
		t.Errorf("DiffuseEmitter.Scatter should return false")
	}
	emit := m.Emitted(0, 0, rec.P)
	if emit.X() != 1 || emit.Y() != 1 || emit.Z() != 1 {
		t.Errorf("Emitted: expected (1,1,1), got (%v,%v,%v)", emit.X(), emit.Y(), emit.Z())
	}
}

func TestCheckerTextureAlternates(t *testing.T) {
	c := NewCheckerTexture(1.0, geometry.NewDirection(1, 1, 1), geometry.NewDirection(0, 0, 0))
	a := c.Value(0, 0, geometry.NewPoint(0.2, 0.2, 0.2))
	b := c.Value(0, 0, geometry.NewPoint(1.2, 0.2, 0.2))
	if a.X() == b.X() {
		t.Errorf("expected adjacent checker cells to differ")
	}
}
