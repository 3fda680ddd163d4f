package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// DayLayout is the Go layout of a calendar day key (YYYY-MM-DD).
const DayLayout = "2006-01-02"
