package profile

// Steam Web API
const (
	steamResolveVanityPath = "/ISteamUser/ResolveVanityURL/v0001/"
	steamSuccess           = 1
)

// Stats API
const (
	leetifyProfilePath  = "/v3/profile"
	leetifySteamIDParam = "steam64_id"
	leetifyHandleParam  = "id"
	leetifyAPIKeyHeader = "_leetify_key"
)

// Response bodies larger than this are treated as upstream failures.
const maxResponseBytes = 1 << 20

const userAgent = "cs2-crosshair/1.0"
