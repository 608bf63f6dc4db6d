package quote

import "testing"

func TestParseLinesTrailingQuantity(t *testing.T) {
	tokens := ParseLines("Chả giò x 20", 10)
	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d", len(tokens))
	}
	tok := tokens[0]
	if tok.Name != "Chả giò" || tok.Quantity != 20 || !tok.Explicit {
		t.Fatalf("unexpected token: %+v", tok)
	}
}

func TestParseLinesSeparators(t *testing.T) {
	for _, input := range []string{"Chả giò x 3", "Chả giò X 3", "Chả giò × 3", "Chả giò - 3"} {
		tokens := ParseLines(input, 10)
		if len(tokens) != 1 || tokens[0].Quantity != 3 || !tokens[0].Explicit {
			t.Errorf("input %q: unexpected tokens %+v", input, tokens)
		}
	}
}

func TestParseLinesLeadingQuantity(t *testing.T) {
	tokens := ParseLines("5 x Gà luộc", 10)
	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d", len(tokens))
	}
	tok := tokens[0]
	if tok.Name != "Gà luộc" || tok.Quantity != 5 || !tok.Explicit {
		t.Fatalf("unexpected token: %+v", tok)
	}
}

func TestParseLinesBareLeadingIntegerIsName(t *testing.T) {
	// "10 người" style text: the integer has no multiplier symbol and
	// must stay part of the name.
	tokens := ParseLines("10 người", 4)
	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d", len(tokens))
	}
	tok := tokens[0]
	if tok.Name != "10 người" || tok.Quantity != 4 || tok.Explicit {
		t.Fatalf("unexpected token: %+v", tok)
	}
}

func TestParseLinesOrdinalStrip(t *testing.T) {
	tokens := ParseLines("1. Gà luộc", 10)
	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d", len(tokens))
	}
	tok := tokens[0]
	if tok.Name != "Gà luộc" {
		t.Fatalf("ordinal prefix not stripped: %+v", tok)
	}
	if tok.Quantity != 10 || tok.Explicit {
		t.Fatalf("ordinal misread as quantity: %+v", tok)
	}
}

func TestParseLinesOrdinalThenTrailingQuantity(t *testing.T) {
	tokens := ParseLines("2. Súp cua x 15", 10)
	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d", len(tokens))
	}
	tok := tokens[0]
	if tok.Name != "Súp cua" || tok.Quantity != 15 || !tok.Explicit {
		t.Fatalf("unexpected token: %+v", tok)
	}
}

func TestParseLinesCommaAndNewlineSplit(t *testing.T) {
	tokens := ParseLines("Gà luộc, Chả giò x 20\nSúp cua\n\n  ", 10)
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %+v", len(tokens), tokens)
	}
	if tokens[0].Name != "Gà luộc" || tokens[1].Name != "Chả giò" || tokens[2].Name != "Súp cua" {
		t.Fatalf("unexpected names: %+v", tokens)
	}
}

func TestParseLinesDefaultQuantityFloor(t *testing.T) {
	tokens := ParseLines("Gà luộc", 0)
	if len(tokens) != 1 || tokens[0].Quantity != 1 {
		t.Fatalf("default quantity not floored at 1: %+v", tokens)
	}
}

func TestParseLinesNameContainingX(t *testing.T) {
	tokens := ParseLines("Xôi gấc x 5", 10)
	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d", len(tokens))
	}
	tok := tokens[0]
	if tok.Name != "Xôi gấc" || tok.Quantity != 5 || !tok.Explicit {
		t.Fatalf("unexpected token: %+v", tok)
	}
}
