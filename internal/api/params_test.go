package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParamsOptionalOmission(t *testing.T) {
	t.Run("empty optional string is never set", func(t *testing.T) {
		p := Params{}
		p.setOptional("cursor", "")

		_, present := p["cursor"]
		assert.False(t, present)
	})

	t.Run("zero int is never set", func(t *testing.T) {
		p := Params{}
		p.setOptionalInt("limit", 0)

		_, present := p["limit"]
		assert.False(t, present)
	})

	t.Run("false bool is never set", func(t *testing.T) {
		p := Params{}
		p.setOptionalBool("inclusive", false)

		_, present := p["inclusive"]
		assert.False(t, present)
	})

	t.Run("non-zero values are coerced to strings", func(t *testing.T) {
		p := Params{}
		p.setOptional("cursor", "dXNlcjpV")
		p.setOptionalInt("limit", 200)
		p.setOptionalBool("inclusive", true)

		assert.Equal(t, "dXNlcjpV", p["cursor"])
		assert.Equal(t, "200", p["limit"])
		assert.Equal(t, "true", p["inclusive"])
	})
}

func TestParamsFormValues(t *testing.T) {
	t.Run("empty values are dropped from the wire form", func(t *testing.T) {
		p := Params{
			"channel": "C123",
			"cursor":  "",
		}

		form := p.formValues()

		assert.Equal(t, "C123", form.Get("channel"))
		_, present := form["cursor"]
		assert.False(t, present)
	})

	t.Run("required values pass through verbatim", func(t *testing.T) {
		p := Params{}
		p.set("channel", "C123")
		p.set("text", "hello & goodbye = fine")

		form := p.formValues()

		assert.Equal(t, "C123", form.Get("channel"))
		assert.Equal(t, "hello & goodbye = fine", form.Get("text"))
	})
}
