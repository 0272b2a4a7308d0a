package nodelink

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/belgraph/bel"
	"github.com/belgraph/bel/diag"
	"github.com/belgraph/bel/directive"
	"github.com/belgraph/bel/location"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	ctx := context.Background()
	lines := []string{
		`SET DOCUMENT Name = "Sample"`,
		`SET DOCUMENT Version = "1.0"`,
		`DEFINE NAMESPACE HGNC AS PATTERN "[A-Z0-9]+"`,
		`DEFINE ANNOTATION CellLine AS LIST {"MCF-7"}`,
		`SET Citation = {"PubMed","J Biol Chem","12345678"}`,
		`SET Evidence = "AKT1 increases JUN."`,
		`p(HGNC:AKT1) increases p(HGNC:JUN)`,
	}
	g, result := bel.Compile(ctx, lines)
	require.True(t, result.OK())

	dctx := directive.NewContext()
	directiveIssues := diag.NewCollectorUnlimited()
	directiveSource := location.NewSyntheticSourceID()
	for _, line := range lines[2:4] {
		directive.Dispatch(ctx, line, dctx, nil, directiveSource, 1, directiveIssues)
	}
	namespaces := dctx.NamespaceKeywords()
	annotations := dctx.AnnotationKeywords()
	require.Equal(t, []string{"HGNC"}, namespaces)
	require.Equal(t, []string{"CellLine"}, annotations)

	meta := DocumentMetadata{Name: "Sample", Version: "1.0"}
	data, err := Encode(g, meta, namespaces, annotations)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(data, &wire))
	require.ElementsMatch(t, []any{"HGNC"}, wire["namespaces"])
	require.ElementsMatch(t, []any{"CellLine"}, wire["annotations"])

	decoded, decodedMeta, decodeResult := Decode(ctx, data)
	require.True(t, decodeResult.OK(), "unexpected issues: %v", decodeResult.IssuesSlice())
	require.Equal(t, "Sample", decodedMeta.Name)

	original := g.Edges()
	roundTripped := decoded.Edges()
	require.Len(t, roundTripped, len(original))
	require.Equal(t, original[0].Hash(), roundTripped[0].Hash())

	originalNodes := g.Nodes()
	roundTrippedNodes := decoded.Nodes()
	require.Len(t, roundTrippedNodes, len(originalNodes))
	for i := range originalNodes {
		require.Equal(t, originalNodes[i].Hash(), roundTrippedNodes[i].Hash())
	}
}

func TestDecode_MalformedJSON(t *testing.T) {
	_, _, result := Decode(context.Background(), []byte(`not json`))
	require.True(t, result.HasFatal())
}

func TestDecode_UnknownNodeReference(t *testing.T) {
	data := []byte(`{
		"metadata": {},
		"nodes": [],
		"edges": [{"source_hash": "deadbeef", "target_hash": "deadbeef", "relation": "increases", "qualified": false}]
	}`)
	_, _, result := Decode(context.Background(), data)
	require.True(t, result.HasErrors())
}
