package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type ObstacleTag struct{}

var ObstacleTagComponent = NewComponent[ObstacleTag]()

// Prefab records which prefab an entity was built from so tuning edits can
// find it again.
type Prefab struct {
	Name string
}

var PrefabComponent = NewComponent[Prefab]()
