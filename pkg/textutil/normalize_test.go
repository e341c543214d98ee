package textutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agenciaflow/agencia-api/pkg/textutil"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Café Andino", "cafe andino"},
		{"PANADERÍA EL TRIGAL", "panaderia el trigal"},
		{"Ñandú Comunicaciones", "nandu comunicaciones"},
		{"  sin tildes  ", "  sin tildes  "},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, textutil.Normalize(tc.in), "entrada %q", tc.in)
	}
}

func TestNormalize_Idempotente(t *testing.T) {
	once := textutil.Normalize("Gestión Logística S.A.S.")
	assert.Equal(t, once, textutil.Normalize(once))
}
