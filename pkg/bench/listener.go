package bench

// Arena progress callbacks, called from the worker goroutines,
// so implementations must be safe for concurrent use
type ListenerLike[M comparable] interface {
	OnMoveMade(info VersusWorkerInfo[M])
	OnFinishedGame(record GameRecord[M])
	OnFinishedWork(info VersusWorkerInfo[M])
}

type DefaultListener[M comparable] struct{}

func (d DefaultListener[M]) OnMoveMade(info VersusWorkerInfo[M]) {}

func (d DefaultListener[M]) OnFinishedGame(record GameRecord[M]) {}

func (d DefaultListener[M]) OnFinishedWork(info VersusWorkerInfo[M]) {}
