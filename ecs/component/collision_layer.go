package component

// Collision categories shared by bodies and spatial queries.
const (
	LayerObstacle uint = 1 << iota
	LayerPlayer
	LayerGhost
	LayerPickup
	LayerProjectile
	LayerEnemy
)
