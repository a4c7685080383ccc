package sqlite

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/fluidattacks/roots/pkg/domain/model"
	"github.com/fluidattacks/roots/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// cipher encrypts credential material and environment secrets before
// they touch the database file.
type cipher struct {
	key *fernet.Key
}

func newCipher(keyString string) (*cipher, error) {
	if keyString == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "encryption key is empty")
	}

	key, err := fernet.DecodeKey(keyString)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid encryption key")
	}

	return &cipher{key: key}, nil
}

func (c *cipher) encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	token, err := fernet.EncryptAndSign([]byte(plaintext), c.key)
	if err != nil {
		return "", goerr.Wrap(err, "encryption failed")
	}
	return base64.StdEncoding.EncodeToString(token), nil
}

func (c *cipher) decrypt(token string) (string, error) {
	if token == "" {
		return "", nil
	}

	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", goerr.Wrap(err, "invalid token format")
	}

	// Stored credentials must not expire; use an effectively unlimited TTL.
	plaintext := fernet.VerifyAndDecrypt(raw, time.Hour*24*365*100, []*fernet.Key{c.key})
	if plaintext == nil {
		return "", goerr.New("failed to decrypt token")
	}

	return string(plaintext), nil
}

// credentialBlob is the encrypted-at-rest shape of inline credential
// secrets.
type credentialBlob struct {
	Key               string `json:"key,omitempty"`
	User              string `json:"user,omitempty"`
	Password          string `json:"password,omitempty"`
	Token             string `json:"token,omitempty"`
	AzureOrganization string `json:"azure_organization,omitempty"`
	IsPAT             bool   `json:"is_pat,omitempty"`
}

func (c *cipher) encryptCredential(cred *model.Credential) (string, error) {
	if cred == nil || cred.Shared() {
		return "", nil
	}

	blob := credentialBlob{
		Key:               string(cred.Key),
		User:              cred.User,
		Password:          string(cred.Password),
		Token:             string(cred.Token),
		AzureOrganization: cred.AzureOrganization,
		IsPAT:             cred.IsPAT,
	}
	data, err := json.Marshal(blob)
	if err != nil {
		return "", goerr.Wrap(err, "failed to serialize credential")
	}

	return c.encrypt(string(data))
}

func (c *cipher) decryptCredential(token string, cred *model.Credential) error {
	if token == "" {
		return nil
	}

	data, err := c.decrypt(token)
	if err != nil {
		return err
	}

	var blob credentialBlob
	if err := json.Unmarshal([]byte(data), &blob); err != nil {
		return goerr.Wrap(err, "failed to deserialize credential")
	}

	cred.Key = types.SSHPrivateKey(blob.Key)
	cred.User = blob.User
	cred.Password = types.Password(blob.Password)
	cred.Token = types.AccessToken(blob.Token)
	cred.AzureOrganization = blob.AzureOrganization
	cred.IsPAT = blob.IsPAT
	return nil
}
