package repository

// Collection names. The four request collections share one generated id per
// submission: the private record's _id keys its public projection, contact
// info, and creation action.
const (
	UsersCollection               = "users"
	UsersPrivilegedCollection     = "users_privileged"
	RequestsCollection            = "requests"
	RequestsPublicCollection      = "requests_public"
	RequestsContactInfoCollection = "requests_contact_info"
	RequestsActionsCollection     = "requests_actions"
	NotificationsCollection       = "notifications"
)
