package utils

// MaskToken mantém só o início do token para logs
func MaskToken(token string) string {
	const visible = 10
	if len(token) <= visible {
		return "***"
	}
	return token[:visible] + "..."
}
