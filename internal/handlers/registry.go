package handlers

// AppHandlers holds every handler wired at startup.
type AppHandlers struct {
	AccountHandler     *AccountHandler
	ApplicationHandler *ApplicationHandler
	JobHandler         *JobHandler
	DebugHandler       *DebugHandler
}
