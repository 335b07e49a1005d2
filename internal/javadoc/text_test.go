package javadoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", CollapseWhitespace("a   b\n\tc"))
	assert.Equal(t, " lead trail ", CollapseWhitespace("  lead   trail  "))
}

func TestTrimBlockLtrimRtrimAndDropsEmpty(t *testing.T) {
	p := NewParagraph(
		NewText("  hello   world  "),
		NewText("   "),
	)
	out := TrimBlock(p)
	if assert.NotNil(t, out) {
		assert.Len(t, out.Children, 1)
		assert.Equal(t, "hello world", out.Children[0].Text)
	}
}

func TestTrimBlockEmptyBecomesNil(t *testing.T) {
	p := NewParagraph(NewText("   "))
	assert.Nil(t, TrimBlock(p))
}

func TestTrimBlockSkipsCode(t *testing.T) {
	code := &Node{IsBlock: true, Block: BlockCode, Children: []*Node{
		NewText("  int x = 1;  \n"),
	}}
	out := TrimBlock(code)
	if assert.NotNil(t, out) {
		assert.Equal(t, "  int x = 1;  \n", out.Children[0].Text)
	}
}

func TestUnindentCode(t *testing.T) {
	code := &Node{IsBlock: true, Block: BlockCode, Children: []*Node{
		NewText("    int x = 1;\n      int y = 2;\n\n    return x;"),
	}}
	UnindentCode(code)
	assert.Equal(t, "int x = 1;\n  int y = 2;\n\nreturn x;", code.Children[0].Text)
}

func TestUnindentCodeIgnoresBlankLinesForMargin(t *testing.T) {
	code := &Node{IsBlock: true, Block: BlockCode, Children: []*Node{
		NewText("  a\n\n  b"),
	}}
	UnindentCode(code)
	assert.Equal(t, "a\n\nb", code.Children[0].Text)
}

func TestRemoveCopiedNodes(t *testing.T) {
	p := NewParagraph(
		NewText("before "),
		&Node{IsInline: true, Inline: InlineCopied, CopyTarget: "Foo::bar"},
		NewText(" after"),
	)
	out := RemoveCopiedNodes(p)
	if assert.NotNil(t, out) {
		assert.Len(t, out.Children, 2)
	}
}
