package refparser

// ParseWithContinuation implements the Javadoc finalizer's heuristic
// re-parse loop (spec.md 4.B "Heuristic re-parse"): the Clang comment
// tokenizer may have truncated a @ref target at the first whitespace,
// breaking a would-be reference like "foo(int) const". next returns the
// next comment-text sibling's raw content, or ok=false when none remain.
// The loop appends siblings and retries until the parse stabilises (one
// more sibling made no further progress), the continuation clearly isn't
// there (appending a sibling didn't even let the parser advance), or no
// siblings remain.
func ParseWithContinuation(first string, next func() (string, bool)) ParseResult {
	cur := first
	best := Parse(cur)

	for continuable(best, cur) {
		sib, ok := next()
		if !ok {
			return best
		}
		candidate := cur + sib
		res := Parse(candidate)

		progressed := res.Pos > best.Pos || (res.OK && !best.OK)
		if !progressed {
			return best
		}
		cur = candidate
		best = res
	}
	return best
}

// continuable reports whether more input could plausibly complete the
// parse: a failed parse always deserves one more attempt (an unclosed
// parameter list, a truncated qualifier token), and a successful parse that
// consumed every byte might still be extended by a sibling that was split
// off by the tokenizer (a trailing "&" or "noexcept" qualifier).
func continuable(res ParseResult, input string) bool {
	if !res.OK {
		return true
	}
	return res.Pos == len(input)
}
