package models

// DatabaseName is the single logical store served by this backend. Requests
// addressing any other database name are rejected.
const DatabaseName = "TalentLinkDB"

const (
	CollectionUsers         = "users"
	CollectionPublishedJobs = "published_jobs"
	CollectionPendingJobs   = "pending_jobs"
)

// KnownCollection reports whether the collection name is on the allow-list.
func KnownCollection(name string) bool {
	switch name {
	case CollectionUsers, CollectionPublishedJobs, CollectionPendingJobs:
		return true
	}
	return false
}

// JobCollection reports whether the name addresses one of the job sub-collections.
func JobCollection(name string) bool {
	return name == CollectionPublishedJobs || name == CollectionPendingJobs
}
