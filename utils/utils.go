package utils

import (
	"crypto/sha512"
	"encoding/hex"
	"strconv"
)

// HashString generates the SHA-512 digest for a given string
func HashString(toHash string) string {
	sha := sha512.New()
	sha.Write([]byte(toHash))
	return hex.EncodeToString(sha.Sum(nil))
}

// StringToInt converts given string to int type
func StringToInt(str string) (int, error) {
	val, err := strconv.Atoi(str)
	if err != nil {
		return -1, err
	}
	return val, nil
}
