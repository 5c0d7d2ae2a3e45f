package flw

// Setting names read from a CredentialSource
const (
	SettingPublicKey     = "public_key"
	SettingSecretKey     = "secret_key"
	SettingSecretHash    = "secret_hash"
	SettingEncryptionKey = "encryption_key"
	SettingBaseURL       = "base_url"
)

// Config holds Flutterwave account credentials
type Config struct {
	PublicKey     string
	SecretKey     string // sent as the bearer token
	SecretHash    string // compared against the verif-hash webhook header
	EncryptionKey string // used by the payments sub-client only
	BaseURL       string // defaults to https://api.flutterwave.com/v3
}

// CredentialSource supplies named settings. *viper.Viper and config.Settings
// both satisfy it.
type CredentialSource interface {
	GetString(key string) string
}

// MapSource is a CredentialSource backed by a plain map
type MapSource map[string]string

// GetString returns the setting for key
func (m MapSource) GetString(key string) string { return m[key] }

func configFromSource(src CredentialSource) Config {
	return Config{
		PublicKey:     src.GetString(SettingPublicKey),
		SecretKey:     src.GetString(SettingSecretKey),
		SecretHash:    src.GetString(SettingSecretHash),
		EncryptionKey: src.GetString(SettingEncryptionKey),
		BaseURL:       src.GetString(SettingBaseURL),
	}
}
