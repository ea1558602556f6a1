package model

import (
	"encoding/base64"
	"errors"
	"strings"
)

// DeedEnvelope wraps the original title deed before encryption. The content
// field carries the raw file bytes encoded as base64.
type DeedEnvelope struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Content string `json:"content"`
}

func NewDeedEnvelope(name, contentType string, raw []byte) DeedEnvelope {
	return DeedEnvelope{
		Name:    name,
		Type:    contentType,
		Content: base64.StdEncoding.EncodeToString(raw),
	}
}

// DecodeContent restores the raw file bytes from the base64 content.
func (e DeedEnvelope) DecodeContent() ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(e.Content)
	if err != nil {
		return nil, errors.New("failed to decode the envelope content: " + err.Error())
	}
	return raw, nil
}

// ExtensionFromFileName extracts the lowercased extension after the last dot.
// A name with no dot and a bare hidden file like ".hidden" both yield "".
func ExtensionFromFileName(fileName string) string {
	parts := strings.Split(fileName, ".")
	if len(parts) == 1 || (parts[0] == "" && len(parts) == 2) {
		return ""
	}
	return strings.ToLower(parts[len(parts)-1])
}

// DeedFileName derives the download name for a decrypted title deed. The
// stored name is ignored apart from its extension.
func DeedFileName(plotNumber, ownerFullName, storedName string) string {
	name := plotNumber + "_" + ownerFullName
	if ext := ExtensionFromFileName(storedName); ext != "" {
		name += "." + ext
	}
	return name
}
