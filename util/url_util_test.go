package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetQueryParam(t *testing.T) {
	tests := []struct {
		name  string
		state string
		key   string
		value string
		want  string
	}{
		{
			name:  "appends to a URL without query",
			state: "https://fan-lift.com/UserLogin",
			key:   "fanlift_session",
			value: "tok",
			want:  "https://fan-lift.com/UserLogin?fanlift_session=tok",
		},
		{
			name:  "keeps existing params first",
			state: "https://fan-lift.com/UserLogin?ref=ad1",
			key:   "fanlift_session",
			value: "tok",
			want:  "https://fan-lift.com/UserLogin?ref=ad1&fanlift_session=tok",
		},
		{
			name:  "replaces in place and drops duplicates",
			state: "https://fan-lift.com/x?auth_error=old&a=1&auth_error=older&b=2",
			key:   "auth_error",
			value: "new",
			want:  "https://fan-lift.com/x?auth_error=new&a=1&b=2",
		},
		{
			name:  "form-encodes the value",
			state: "https://fan-lift.com/x",
			key:   "auth_error",
			value: "Failed to get user information from Google.",
			want:  "https://fan-lift.com/x?auth_error=Failed+to+get+user+information+from+Google.",
		},
		{
			name:  "leaves raw encoding of other params alone",
			state: "https://fan-lift.com/x?next=%2Fhome%3Ftab%3D1#top",
			key:   "fanlift_session",
			value: "a/b",
			want:  "https://fan-lift.com/x?next=%2Fhome%3Ftab%3D1&fanlift_session=a%2Fb#top",
		},
		{
			name:  "matches encoded keys",
			state: "https://fan-lift.com/x?auth%5Ferror=old",
			key:   "auth_error",
			value: "new",
			want:  "https://fan-lift.com/x?auth_error=new",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SetQueryParam(tt.state, tt.key, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStateURL(t *testing.T) {
	for _, raw := range []string{"", "/relative", "fan-lift.com/UserLogin", "ftp://fan-lift.com", "https://", "javascript:alert(1)"} {
		_, err := ParseStateURL(raw)
		assert.ErrorIs(t, err, ErrInvalidStateURL, raw)
	}

	u, err := ParseStateURL("http://localhost:5173/login")
	require.NoError(t, err)
	assert.Equal(t, "localhost:5173", u.Host)
}

func TestPanicMessage(t *testing.T) {
	assert.Equal(t, "boom", PanicMessage("boom"))
	assert.Equal(t, "nil map", PanicMessage(errString("nil map")))
	assert.Equal(t, "42", PanicMessage(42))
	assert.Equal(t, DefaultErrMessage, PanicMessage(""))
	assert.Equal(t, DefaultErrMessage, PanicMessage(nil))
}

type errString string

func (e errString) Error() string { return string(e) }
