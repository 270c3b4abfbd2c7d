package ecs

// System is one step of a frame. Exported Query and Singleton fields of a
// system struct are wired to the storage by Scheduler.Register; any other
// field keeps its value between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
