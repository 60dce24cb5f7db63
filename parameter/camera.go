package parameter

// Camera projection
const (
	// FOVDegrees is the vertical field of view
	FOVDegrees = 60.0

	// NearPlane is the near clipping distance in meters
	NearPlane = 0.1

	// FarPlane is the far clipping distance in meters
	FarPlane = 100.0
)

// Third-person follow offset, behind and above the drone in its local
// frame (meters)
const (
	ThirdPersonBack = 2.5
	ThirdPersonUp   = 1.2
)

// FreeCam
const (
	// FreeCamAccel is the free-roam acceleration per directional input
	// in m/s²
	FreeCamAccel = 8.0

	// FreeCamDamping is the per-second free-roam velocity decay
	FreeCamDamping = 2.0
)
