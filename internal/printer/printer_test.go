package printer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
)

func TestNotices_PlainWriter(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Successf("Blog saved as %s", "blog-posts/x.md")
	p.Errorf("Failed to save the blog. Please try again.")
	p.Infof("No posts found")
	p.Warnf("careful")

	assert.Equal(t,
		"✔ Blog saved as blog-posts/x.md\n"+
			"✘ Failed to save the blog. Please try again.\n"+
			"• No posts found\n"+
			"• careful\n",
		buf.String(),
	)
}

func TestFatalError(t *testing.T) {
	t.Run("plain error", func(t *testing.T) {
		var buf bytes.Buffer
		New(&buf).FatalError(errors.New("boom"))
		assert.Equal(t, "╭ Error\n│ boom\n╵\n", buf.String())
	})

	t.Run("validation error", func(t *testing.T) {
		var buf bytes.Buffer
		err := fmt.Errorf("load config: %w", criterio.NewFieldErrors("sink", errors.New("invalid sink")))
		New(&buf).FatalError(err)

		out := buf.String()
		assert.Contains(t, out, "╭ Validation Error")
		assert.Contains(t, out, "│ load config")
		assert.Contains(t, out, "✘ sink: invalid sink")
	})

	t.Run("nil", func(t *testing.T) {
		var buf bytes.Buffer
		New(&buf).FatalError(nil)
		assert.Empty(t, buf.String())
	})
}

func TestItems(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Section("Configuration")
	p.CheckItem("Config valid", "")
	p.FailItem("sink", "invalid")

	assert.Equal(t, "Configuration\n  ✔ Config valid\n  ✘ sink: invalid\n", buf.String())
}

func TestCtx(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)
	ctx := NewContext(context.Background(), p)

	assert.Same(t, p, Ctx(ctx))
	assert.NotNil(t, Ctx(context.Background()))
}
