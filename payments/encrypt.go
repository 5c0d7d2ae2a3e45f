package payments

import (
	"bytes"
	"crypto/cipher"
	"crypto/des"
	"encoding/base64"

	ierr "github.com/KriaaCompany/flw-sdk/internal/errors"
)

// Encrypt encrypts plaintext the way Flutterwave expects card charge
// payloads: 3DES in ECB mode with PKCS#7 padding, base64-encoded. key is the
// 24-character account encryption key.
func Encrypt(key string, plaintext []byte) (string, error) {
	block, err := des.NewTripleDESCipher([]byte(key))
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Encryption key must be the 24 character key from the Flutterwave dashboard").
			Mark(ierr.ErrConfig)
	}

	padded := pad(plaintext, block.BlockSize())
	out := make([]byte, len(padded))
	ecb(block, out, padded, block.Encrypt)

	return base64.StdEncoding.EncodeToString(out), nil
}

// Decrypt reverses Encrypt
func Decrypt(key string, encoded string) ([]byte, error) {
	block, err := des.NewTripleDESCipher([]byte(key))
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Encryption key must be the 24 character key from the Flutterwave dashboard").
			Mark(ierr.ErrConfig)
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ierr.WithError(err).Mark(ierr.ErrDecode)
	}
	if len(raw) == 0 || len(raw)%block.BlockSize() != 0 {
		return nil, ierr.NewError("ciphertext is not a whole number of blocks").Mark(ierr.ErrDecode)
	}

	out := make([]byte, len(raw))
	ecb(block, out, raw, block.Decrypt)

	return unpad(out, block.BlockSize())
}

// ecb applies fn block by block; the standard library has no ECB mode
func ecb(block cipher.Block, dst, src []byte, fn func(dst, src []byte)) {
	bs := block.BlockSize()
	for i := 0; i < len(src); i += bs {
		fn(dst[i:i+bs], src[i:i+bs])
	}
}

func pad(b []byte, blockSize int) []byte {
	n := blockSize - len(b)%blockSize
	return append(append([]byte(nil), b...), bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(b []byte, blockSize int) ([]byte, error) {
	n := int(b[len(b)-1])
	if n == 0 || n > blockSize || n > len(b) {
		return nil, ierr.NewError("invalid padding").Mark(ierr.ErrDecode)
	}
	for _, v := range b[len(b)-n:] {
		if int(v) != n {
			return nil, ierr.NewError("invalid padding").Mark(ierr.ErrDecode)
		}
	}
	return b[:len(b)-n], nil
}
