package parameter

// Drone rigid body
const (
	// DroneMass is the drone mass in kg
	DroneMass = 0.5

	// DroneRadius is the bounding sphere radius in meters
	DroneRadius = 0.35

	// ThrustForce is the force in newtons applied per directional
	// thrust event for one tick (horizontal axes)
	ThrustForce = 6.0

	// ThrustForceVertical is the vertical thrust force in newtons;
	// stronger than horizontal so climb can beat gravity
	ThrustForceVertical = 12.0

	// LinearDamping is the per-second velocity decay factor, high for
	// responsive control and quick stops
	LinearDamping = 0.9

	// AngularDamping is the per-second angular velocity decay factor
	AngularDamping = 0.9

	// TiltMax is the largest visual tilt induced by thrust, in radians
	TiltMax = 0.25

	// TiltRate is how fast tilt relaxes toward its target, per second
	TiltRate = 5.0
)

// Environment
const (
	// Gravity is the downward acceleration in m/s²
	Gravity = 9.81

	// Restitution is the contact bounce coefficient; zero means
	// contacts kill inward velocity without bouncing
	Restitution = 0.0
)

// Room dimensions in meters, centered on the origin in X/Z with the
// floor at y=0
const (
	RoomWidth  = 10.0
	RoomDepth  = 10.0
	RoomHeight = 6.0
)

// Spawn
const (
	SpawnX = 0.0
	SpawnY = 2.0
	SpawnZ = -3.0
)
