package interfaces

// Repository defines the interface for data persistence. A Repository holds the
// process-wide store connection; it is built once at startup and closed at shutdown.
type Repository interface {
	Memo() MemoRepository

	Close() error
}
