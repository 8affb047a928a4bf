package frame

type UpdateFrame struct {
	DeltaTime float64
	Index     uint64
	Commands  *Commands
	Resources *Resources
}

func newUpdateFrame(dt float64, index uint64, resources *Resources) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Index:     index,
		Commands:  newCommands(),
		Resources: resources,
	}
}
