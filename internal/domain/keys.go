package domain

type CtxKey string

// KeyUserID carries the authenticated user's id, attached by the auth
// middleware after token verification. Usecases read it for ownership checks.
const KeyUserID CtxKey = "UserID"
