package frame

// System is one step of the per-frame update. Systems may carry Singleton
// fields, which the Scheduler binds on registration, and any private state
// they need between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
