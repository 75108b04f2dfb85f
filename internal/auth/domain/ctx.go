package domain

// Ctx is the authenticated identity resolved for a single request.
// It is created fresh by the ctx resolver and never shared across requests.
type Ctx struct {
	UserID uint64
}

// NewCtx creates a Ctx for userID.
func NewCtx(userID uint64) Ctx {
	return Ctx{UserID: userID}
}

// AuthResult is the outcome of resolving a request's credentials: either a Ctx or the
// authentication error explaining why none could be resolved.
type AuthResult struct {
	Ctx Ctx
	Err error
}

// Resolved builds a successful AuthResult.
func Resolved(ctx Ctx) AuthResult {
	return AuthResult{Ctx: ctx}
}

// Failed builds a failed AuthResult.
func Failed(err error) AuthResult {
	return AuthResult{Err: err}
}

// OK reports whether the result carries a resolved Ctx.
func (r AuthResult) OK() bool {
	return r.Err == nil
}

// Unwrap returns the Ctx or the resolution error.
func (r AuthResult) Unwrap() (Ctx, error) {
	if r.Err != nil {
		return Ctx{}, r.Err
	}
	return r.Ctx, nil
}
