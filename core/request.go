package core

// UserAgent is sent on all outgoing HTTP requests, as required by the
// CurseForge third-party API terms.
const UserAgent = "modfetch/modfetch"
