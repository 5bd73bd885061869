package service

import (
	"github.com/MKhiriev/student-portal/internal/adapter"
	"github.com/MKhiriev/student-portal/internal/logger"
	"github.com/MKhiriev/student-portal/internal/store"
)

// UI groups the collaborators the UI provides to the service layer.
type UI struct {
	Loading   LoadingIndicator
	Notifier  Notifier
	Navigator Navigator
}

// ClientServices groups every service of the client.
type ClientServices struct {
	Directory   UserDirectoryService
	RefreshJob  RefreshJob
	CacheWriter *CacheWriter
}

// NewClientServices wires the services to the transport, the directory state,
// the cache and the UI collaborators.
func NewClientServices(
	usersAdapter adapter.UsersAdapter,
	directoryStore DirectoryStore,
	storages *store.ClientStorages,
	ui UI,
	adminID string,
	logger *logger.Logger,
) *ClientServices {
	directorySvc := NewUserDirectoryService(usersAdapter, directoryStore, ui.Loading, ui.Notifier, ui.Navigator, logger)

	return &ClientServices{
		Directory:   directorySvc,
		RefreshJob:  NewRefreshJob(directorySvc, logger),
		CacheWriter: NewCacheWriter(directoryStore, storages.SnapshotRepository, adminID, logger),
	}
}
