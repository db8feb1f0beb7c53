package port

// StyleInjector defines the port interface for injecting stylesheets into a document.
// Injecting twice under the same id replaces the earlier sheet.
type StyleInjector interface {
	InjectStyle(id, css string) error
	RemoveStyle(id string)
}
