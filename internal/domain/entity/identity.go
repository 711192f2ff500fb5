package entity

// CallerIdentity is the result of an STS GetCallerIdentity call, used to
// match the active credentials against the configured account directory.
type CallerIdentity struct {
	AccountID string `json:"account_id"`
	ARN       string `json:"arn"`
	UserID    string `json:"user_id"`
}
