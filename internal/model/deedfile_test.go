package model_test

import (
	"testing"

	"land-registry/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestExtensionFromFileName(t *testing.T) {
	assert.Equal(t, "pdf", model.ExtensionFromFileName("deed.pdf"))
	assert.Equal(t, "", model.ExtensionFromFileName("noext"))
	assert.Equal(t, "", model.ExtensionFromFileName(".hidden"))
	assert.Equal(t, "gz", model.ExtensionFromFileName("archive.tar.gz"))
	assert.Equal(t, "pdf", model.ExtensionFromFileName("DEED.PDF"))
	assert.Equal(t, "txt", model.ExtensionFromFileName(".hidden.txt"))
}

func TestDeedFileName(t *testing.T) {
	assert.Equal(t, "PLT-2023-001_John Doe.pdf", model.DeedFileName("PLT-2023-001", "John Doe", "deed.pdf"))
	assert.Equal(t, "PLT-2023-002_Jane Smith", model.DeedFileName("PLT-2023-002", "Jane Smith", "noext"))
	assert.Equal(t, "PLT-1_A", model.DeedFileName("PLT-1", "A", ".hidden"))
}
