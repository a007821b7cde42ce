package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gavel/internal/ast"
)

func TestFullPolicyIntegration(t *testing.T) {
	source := `
rule gdpr_retention {
    if record.age > 30 days and region in [EU, UK] then delete;
    if not consent.marketing == 1 then mask;
}

rule pci {
    if (card.last_used > 365 days or card.status == revoked) and not card.tokenized == 1 then encrypt
    if failed_logins >= 5 then notify
}`

	result, err := ParseSource(source)
	require.NoError(t, err)
	require.NotNil(t, result.Program)

	assert.Equal(t, []string{"gdpr_retention", "pci"}, result.RuleNames())

	pci, ok := result.Program.RuleByName("pci")
	require.True(t, ok)
	require.Len(t, pci.Statements, 2)

	and, ok := pci.Statements[0].Condition.(*ast.AndExpr)
	require.True(t, ok, "expected AndExpr, got %T", pci.Statements[0].Condition)

	group, ok := and.Left.(*ast.GroupExpr)
	require.True(t, ok, "expected GroupExpr, got %T", and.Left)

	or, ok := group.Value.(*ast.OrExpr)
	require.True(t, ok)
	assert.Equal(t,
		cmp(field("card", "last_used"), ast.Gt, &ast.DurationOperand{Value: 365, Unit: "days"}),
		or.Left)

	not, ok := and.Right.(*ast.NotExpr)
	require.True(t, ok)
	assert.Equal(t, cmp(field("card", "tokenized"), ast.Eq, num(1)), not.Value)

	// Every node the parser built has a recorded position.
	for _, rule := range result.Program.Rules {
		_, ok := result.PositionOf(rule)
		assert.True(t, ok, "rule %s has no position", rule.Name)
		for _, stmt := range rule.Statements {
			_, ok := result.PositionOf(stmt)
			assert.True(t, ok)
			_, ok = result.PositionOf(stmt.Condition)
			assert.True(t, ok)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	sources := []string{
		"rule r { if age > 18 and country in [US,CA] then mask }",
		"rule empty {}",
		"rule a { if x == 1 then delete; } rule b { if y != 2 then notify }",
		"rule r { if not not a == 1 then encrypt }",
		"rule r { if (a == 1 or b == 2) and c == 3 then mask }",
		"rule r { if a == 1 or (b == 2 and c == 3) then mask }",
		"rule r { if a == 1 or b == 2 or c == 3 then mask }",
		"rule r { if ((x.y.z in [p, q])) then delete }",
		"rule r { if 30 days <= retention.window then delete }",
		"rule r { if 18 < age and not (region in [EU]) then notify }",
		"rule r { if 1 == 1 then delete }",
	}

	for _, source := range sources {
		t.Run(source, func(t *testing.T) {
			first, err := ParseSource(source)
			require.NoError(t, err)

			printed := first.Program.String()
			second, err := ParseSource(printed)
			require.NoError(t, err, "reparsing printed source:\n%s", printed)

			assert.Equal(t, first.Program, second.Program)
			assert.Equal(t, printed, second.Program.String(), "printing is not stable")
		})
	}
}

func TestCanonicalPrinting(t *testing.T) {
	result, err := ParseSource("rule r{if age>18 and country in[US,CA]then mask if(a==1)then delete;}")
	require.NoError(t, err)

	expected := strings.Join([]string{
		"rule r {",
		"    if age > 18 and country in [US, CA] then mask;",
		"    if (a == 1) then delete;",
		"}",
	}, "\n")
	assert.Equal(t, expected, result.Program.String())
}
