package mcp_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"sort"
	"strings"
	"testing"

	"dissolve/internal/config"
	mcpserver "dissolve/internal/mcp"
	"dissolve/internal/store"
	"dissolve/internal/taxonomy"

	"github.com/google/go-cmp/cmp"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	})))
	os.Exit(m.Run())
}

func newTestServer(t *testing.T, cfg *config.Config, opts ...mcpserver.Option) *mcpserver.Server {
	t.Helper()
	return mcpserver.NewServer(cfg, opts...)
}

func connectInMemory(t *testing.T, ctx context.Context, srv *mcpserver.Server) *sdkmcp.ClientSession {
	t.Helper()
	t1, t2 := sdkmcp.NewInMemoryTransports()
	serverSession, err := srv.MCPServer.Connect(ctx, t1, nil)
	if err != nil {
		t.Fatalf("server.Connect: %v", err)
	}
	t.Cleanup(func() { serverSession.Close() })

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, t2, nil)
	if err != nil {
		t.Fatalf("client.Connect: %v", err)
	}
	t.Cleanup(func() { session.Close() })
	return session
}

func textOf(res *sdkmcp.CallToolResult) string {
	for _, c := range res.Content {
		if tc, ok := c.(*sdkmcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func callTool(t *testing.T, ctx context.Context, session *sdkmcp.ClientSession, name string, args map[string]any) map[string]any {
	t.Helper()
	res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		t.Fatalf("CallTool(%s): %v", name, err)
	}
	if res.IsError {
		t.Fatalf("CallTool(%s) returned error: %s", name, textOf(res))
	}
	result := make(map[string]any)
	text := textOf(res)
	if text == "" {
		t.Fatalf("no text content in tool result")
	}
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		t.Fatalf("unmarshal tool result: %v (text: %s)", err, text)
	}
	return result
}

// toolError is the JSON record a failed tool call carries in its text content.
type toolError struct {
	Error        string   `json:"error"`
	Kind         string   `json:"kind"`
	Catalog      string   `json:"catalog"`
	ID           string   `json:"id"`
	Valid        []string `json:"valid"`
	Op           string   `json:"op"`
	Alternatives []string `json:"alternatives"`
}

// callToolErr calls a tool that is expected to fail and decodes its error record.
func callToolErr(t *testing.T, ctx context.Context, session *sdkmcp.ClientSession, name string, args map[string]any) toolError {
	t.Helper()
	res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		t.Fatalf("expected tool error, got transport error: %v", err)
	}
	if !res.IsError {
		t.Fatalf("CallTool(%s): expected IsError=true, got %s", name, textOf(res))
	}
	var rec toolError
	if err := json.Unmarshal([]byte(textOf(res)), &rec); err != nil {
		t.Fatalf("CallTool(%s): error is not a JSON record: %v (text: %s)", name, err, textOf(res))
	}
	return rec
}

var baseTools = []string{
	"apply_dissolution_rhythmic_preset",
	"classify_dissolution_intent",
	"compute_dissolution_distance",
	"compute_dissolution_trajectory",
	"decompose_dissolution_from_description",
	"enhance_dissolution_prompt",
	"extract_dissolution_visual_vocabulary",
	"generate_dissolution_attractor_prompt",
	"generate_dissolution_rhythmic_sequence",
	"generate_dissolution_sequence_prompts",
	"get_dissolution_canonical_states",
	"get_dissolution_domain_registry_config",
	"get_dissolution_style_details",
	"get_dissolution_visual_types",
	"get_server_info",
	"list_color_harmony_modes",
	"list_contrast_curves",
	"list_dissolution_attractor_presets",
	"list_dissolution_rhythmic_presets",
	"list_dissolution_styles",
	"list_edge_modes",
	"list_hydrology_states",
	"list_substrate_types",
	"map_dissolution_parameters",
	"validate_dissolution_decomposition_round_trip",
}

func toolNames(t *testing.T, ctx context.Context, session *sdkmcp.ClientSession) []string {
	t.Helper()
	tools, err := session.ListTools(ctx, nil)
	if err != nil {
		t.Fatalf("ListTools: %v", err)
	}
	var names []string
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
		if tool.Description == "" {
			t.Errorf("tool %s has no description", tool.Name)
		}
	}
	sort.Strings(names)
	return names
}

func TestServer_ToolDiscovery(t *testing.T) {
	ctx := context.Background()
	session := connectInMemory(t, ctx, newTestServer(t, nil))
	if diff := cmp.Diff(baseTools, toolNames(t, ctx, session)); diff != "" {
		t.Errorf("tools (-want +got):\n%s", diff)
	}

	withHistory := connectInMemory(t, ctx, newTestServer(t, nil, mcpserver.WithHistory(store.NewMemStore())))
	want := append(append([]string(nil), baseTools...), "get_dissolution_history")
	sort.Strings(want)
	if diff := cmp.Diff(want, toolNames(t, ctx, withHistory)); diff != "" {
		t.Errorf("tools with history (-want +got):\n%s", diff)
	}
}

func TestServer_Catalogs(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Server.Version = "9.9.9"
	session := connectInMemory(t, ctx, newTestServer(t, cfg))

	info := callTool(t, ctx, session, "get_server_info", map[string]any{})
	if info["version"] != "9.9.9" || info["domain"] != "watercolor_dissolution" {
		t.Errorf("server info = %v", info)
	}
	counts := map[string]float64{
		"visual_types": 6, "canonical_states": 10, "edge_modes": 6,
		"hydrology_states": 5, "substrate_types": 5, "color_harmony_modes": 5,
		"contrast_curves": 6, "rhythmic_presets": 5, "attractor_presets": 7,
	}
	for k, want := range counts {
		if info[k] != want {
			t.Errorf("%s = %v, want %v", k, info[k], want)
		}
	}

	styles := callTool(t, ctx, session, "list_dissolution_styles", map[string]any{})
	list := styles["styles"].([]any)
	if styles["count"] != 6.0 || len(list) != 6 {
		t.Fatalf("styles = %v", styles)
	}
	first := list[0].(map[string]any)
	if first["id"] != "editorial_wash" || !strings.HasSuffix(first["description"].(string), "...") {
		t.Errorf("first style = %v", first)
	}
	if n := len([]rune(first["description"].(string))); n > 123 {
		t.Errorf("description has %d runes", n)
	}

	for tool, key := range map[string]string{
		"get_dissolution_canonical_states":   "canonical_states",
		"list_edge_modes":                    "edge_modes",
		"list_hydrology_states":              "hydrology_states",
		"list_substrate_types":               "substrate_types",
		"list_color_harmony_modes":           "color_harmony_modes",
		"list_contrast_curves":               "contrast_curves",
		"list_dissolution_rhythmic_presets":  "rhythmic_presets",
		"list_dissolution_attractor_presets": "attractor_presets",
	} {
		out := callTool(t, ctx, session, tool, map[string]any{})
		items, ok := out[key].([]any)
		if !ok || float64(len(items)) != counts[key] || out["count"] != counts[key] {
			t.Errorf("%s: got %d items, count %v", tool, len(items), out["count"])
		}
	}

	vts := callTool(t, ctx, session, "get_dissolution_visual_types", map[string]any{})
	for _, v := range vts["visual_types"].([]any) {
		if kw := v.(map[string]any)["keywords"].([]any); len(kw) != 4 {
			t.Errorf("visual type keywords = %d, want 4", len(kw))
		}
	}
	if names := vts["parameter_names"].([]any); len(names) != 5 || names[3] != "pigment_hydrology" {
		t.Errorf("parameter names = %v", names)
	}

	reg := callTool(t, ctx, session, "get_dissolution_domain_registry_config", map[string]any{})
	if reg["n_visual_types"] != 6.0 || len(reg["attractor_presets"].(map[string]any)) != 7 {
		t.Errorf("registry = %v", reg)
	}
	preset := reg["rhythmic_presets"].(map[string]any)["fidelity_breathing"].(map[string]any)
	if preset["period"] != 20.0 || preset["state_a"] != "editorial_wash" {
		t.Errorf("fidelity_breathing = %v", preset)
	}
}

func TestServer_StyleDetails(t *testing.T) {
	ctx := context.Background()
	session := connectInMemory(t, ctx, newTestServer(t, nil))

	vt := callTool(t, ctx, session, "get_dissolution_style_details", map[string]any{"style_id": "ghost_impression"})
	if vt["name"] != "Ghost Impression" || len(vt["keywords"].([]any)) != 8 {
		t.Errorf("details = %v", vt)
	}

	rec := callToolErr(t, ctx, session, "get_dissolution_style_details", map[string]any{"style_id": "baroque"})
	want := toolError{
		Error:   rec.Error,
		Kind:    "unknown_identifier",
		Catalog: "style",
		ID:      "baroque",
		Valid:   taxonomy.Default().VisualTypeIDs(),
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Errorf("error record (-want +got):\n%s", diff)
	}
	if !strings.Contains(rec.Error, `unknown style "baroque"`) {
		t.Errorf("error message = %q", rec.Error)
	}
}

func TestServer_ClassifyAndDecompose(t *testing.T) {
	ctx := context.Background()
	session := connectInMemory(t, ctx, newTestServer(t, nil))

	intent := callTool(t, ctx, session, "classify_dissolution_intent", map[string]any{
		"user_intent": "a controlled, selective wash on an editorial magazine photo",
	})
	if intent["primary_style"] != "editorial_wash" || intent["confidence"] != 1.0 {
		t.Errorf("intent = %v", intent)
	}

	empty := callTool(t, ctx, session, "classify_dissolution_intent", map[string]any{"user_intent": ""})
	if empty["primary_style"] != "contested_boundary" || empty["confidence"] != 0.3 {
		t.Errorf("empty intent = %v", empty)
	}

	dec := callTool(t, ctx, session, "decompose_dissolution_from_description", map[string]any{
		"description": "Ghostly faded blueprint on parchment with tea stains",
	})
	if dec["nearest_type"] != "ghost_impression" || dec["detected"] != true {
		t.Errorf("decomposition = %v", dec)
	}
}

func TestServer_Map(t *testing.T) {
	ctx := context.Background()
	session := connectInMemory(t, ctx, newTestServer(t, nil))

	m := callTool(t, ctx, session, "map_dissolution_parameters", map[string]any{
		"style_id":  "chromatic_flood",
		"intensity": "dramatic",
	})
	state := m["state"].(map[string]any)
	if state["pigment_hydrology"] != 1.0 || m["hydrology_state"] != "flooding" || m["emphasis"] != "balanced" {
		t.Errorf("mapping = %v", m)
	}
	if m["substrate"] != nil {
		t.Errorf("substrate should be null, got %v", m["substrate"])
	}

	rec := callToolErr(t, ctx, session, "map_dissolution_parameters", map[string]any{"style_id": "nope"})
	if rec.Kind != "unknown_identifier" || rec.ID != "nope" || len(rec.Valid) != 6 {
		t.Errorf("error = %+v", rec)
	}
}

func TestServer_Vocabulary(t *testing.T) {
	ctx := context.Background()
	session := connectInMemory(t, ctx, newTestServer(t, nil))

	v := callTool(t, ctx, session, "extract_dissolution_visual_vocabulary", map[string]any{
		"dissolution_id": "full_dissolution",
	})
	if v["nearest_visual_type"] != "full_dissolution" || v["strength"] != 1.0 {
		t.Errorf("vocabulary = %v", v)
	}

	v = callTool(t, ctx, session, "extract_dissolution_visual_vocabulary", map[string]any{
		"state": map[string]any{
			"dissolution_rate": 0.9, "edge_coherence": 0.1, "substrate_visibility": 0.3,
			"pigment_hydrology": 0.95, "anchor_density": 0.05,
		},
		"strength": 0.4,
	})
	if v["strength"] != 0.4 {
		t.Errorf("strength should pass through, got %v", v["strength"])
	}

	rec := callToolErr(t, ctx, session, "extract_dissolution_visual_vocabulary", map[string]any{})
	if rec.Kind != "missing_input" || len(rec.Alternatives) != 2 || rec.Valid != nil {
		t.Errorf("missing input error = %+v", rec)
	}
	if !strings.Contains(rec.Error, "state or dissolution_id") {
		t.Errorf("missing input message = %q", rec.Error)
	}
}

func TestServer_DistanceAndTrajectory(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Defaults.TrajectorySteps = 8
	session := connectInMemory(t, ctx, newTestServer(t, cfg))

	d := callTool(t, ctx, session, "compute_dissolution_distance", map[string]any{
		"id_1": "editorial_wash", "id_2": "chromatic_flood",
	})
	if d["dominant_axis"] != "pigment_hydrology" {
		t.Errorf("distance = %v", d)
	}

	tr := callTool(t, ctx, session, "compute_dissolution_trajectory", map[string]any{
		"start_id": "editorial_wash", "end_id": "full_dissolution",
	})
	if tr["num_steps"] != 8.0 || len(tr["trajectory"].([]any)) != 9 {
		t.Errorf("configured default steps not applied: %v", tr["num_steps"])
	}
	tr = callTool(t, ctx, session, "compute_dissolution_trajectory", map[string]any{
		"start_id": "editorial_wash", "end_id": "full_dissolution", "num_steps": 4,
	})
	if len(tr["trajectory"].([]any)) != 5 {
		t.Errorf("explicit steps ignored: %d samples", len(tr["trajectory"].([]any)))
	}

	rec := callToolErr(t, ctx, session, "compute_dissolution_trajectory", map[string]any{
		"start_id": "editorial_wash", "end_id": "mystery",
	})
	if rec.ID != "mystery" || rec.Catalog != "state" || len(rec.Valid) == 0 {
		t.Errorf("error should name the id and list valid ones: %+v", rec)
	}
}

func TestServer_Rhythm(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Defaults.StepsPerCycle = 8
	cfg.Defaults.NumCycles = 2
	session := connectInMemory(t, ctx, newTestServer(t, cfg))

	r := callTool(t, ctx, session, "generate_dissolution_rhythmic_sequence", map[string]any{
		"state_a_id": "editorial_wash", "state_b_id": "full_dissolution",
	})
	if r["total_steps"] != 16.0 || r["sampled_keyframes"] != 8.0 || r["oscillation_pattern"] != "sinusoidal" {
		t.Errorf("rhythm = %v", r)
	}

	r = callTool(t, ctx, session, "generate_dissolution_rhythmic_sequence", map[string]any{
		"state_a_id": "editorial_wash", "state_b_id": "full_dissolution",
		"steps_per_cycle": 20, "num_cycles": 3, "oscillation_pattern": "zigzag",
	})
	if r["sampled_keyframes"] != 12.0 || r["oscillation_pattern"] != "sinusoidal" {
		t.Errorf("rhythm = %v", r)
	}

	drift := func(seed int) []any {
		out := callTool(t, ctx, session, "generate_dissolution_rhythmic_sequence", map[string]any{
			"state_a_id": "ghost_impression", "state_b_id": "chromatic_flood",
			"oscillation_pattern": "drift", "seed": seed,
		})
		return out["sequence"].([]any)
	}
	if diff := cmp.Diff(drift(7), drift(7)); diff != "" {
		t.Errorf("drift should be deterministic for a seed:\n%s", diff)
	}

	p := callTool(t, ctx, session, "apply_dissolution_rhythmic_preset", map[string]any{"preset_name": "fidelity_breathing"})
	if p["period"] != 20.0 || len(p["sequence"].([]any)) != 20 {
		t.Errorf("preset = %v", p["period"])
	}
	rec := callToolErr(t, ctx, session, "apply_dissolution_rhythmic_preset", map[string]any{"preset_name": "waltz"})
	if rec.Kind != "unknown_identifier" || rec.Catalog != "preset" || len(rec.Valid) != 5 {
		t.Errorf("error = %+v", rec)
	}
}

func TestServer_Prompts(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Defaults.KeyframeCount = 3
	session := connectInMemory(t, ctx, newTestServer(t, cfg))

	r := callTool(t, ctx, session, "generate_dissolution_attractor_prompt", map[string]any{
		"attractor_id": "chromatic_flood", "style_modifier": "35mm grain",
	})
	if r["mode"] != "composite" || !strings.HasSuffix(r["prompt"].(string), "Style modifier: 35mm grain.") {
		t.Errorf("composite = %v", r)
	}

	r = callTool(t, ctx, session, "generate_dissolution_attractor_prompt", map[string]any{
		"attractor_id": "chromatic_flood", "mode": "sequence",
	})
	if r["keyframe_count"] != 3.0 || len(r["keyframes"].([]any)) != 3 {
		t.Errorf("configured keyframe default not applied: %v", r["keyframe_count"])
	}

	rec := callToolErr(t, ctx, session, "generate_dissolution_attractor_prompt", map[string]any{"mode": "split_view"})
	if rec.Kind != "missing_input" || !strings.Contains(rec.Error, "attractor_id or custom_state") {
		t.Errorf("error = %+v", rec)
	}

	seq := callTool(t, ctx, session, "generate_dissolution_sequence_prompts", map[string]any{
		"preset_name": "fidelity_breathing", "keyframe_count": 4,
	})
	frames := seq["keyframes"].([]any)
	if len(frames) != 4 {
		t.Fatalf("keyframes = %d", len(frames))
	}
	peak := frames[1].(map[string]any)
	if peak["phase_degrees"] != 90.0 || peak["nearest_type"] != "full_dissolution" {
		t.Errorf("peak keyframe = %v", peak)
	}
}

func TestServer_RoundTripAndEnhance(t *testing.T) {
	ctx := context.Background()
	session := connectInMemory(t, ctx, newTestServer(t, nil))

	rt := callTool(t, ctx, session, "validate_dissolution_decomposition_round_trip", map[string]any{})
	if rt["n_types_tested"] != 6.0 || len(rt["per_type_results"].([]any)) != 6 {
		t.Errorf("round trip = %v", rt)
	}

	e := callTool(t, ctx, session, "enhance_dissolution_prompt", map[string]any{
		"user_intent":    "a controlled, selective wash on an editorial magazine photo",
		"style_override": "ghost_impression",
	})
	cls := e["classification"].(map[string]any)
	if cls["detected_style"] != "editorial_wash" || cls["applied_style"] != "ghost_impression" {
		t.Errorf("provenance = %v", cls)
	}
}

func TestServer_History(t *testing.T) {
	ctx := context.Background()
	h := store.NewMemStore()
	session := connectInMemory(t, ctx, newTestServer(t, nil, mcpserver.WithHistory(h)))

	callTool(t, ctx, session, "classify_dissolution_intent", map[string]any{"user_intent": "ghost"})
	callToolErr(t, ctx, session, "get_dissolution_style_details", map[string]any{"style_id": "nope"})
	callTool(t, ctx, session, "classify_dissolution_intent", map[string]any{"user_intent": "flood"})

	runs, err := h.ListRuns(store.Filter{})
	if err != nil || len(runs) != 3 {
		t.Fatalf("recorded %d runs err %v", len(runs), err)
	}
	if runs[0].Args != `{"user_intent":"flood"}` || runs[0].CallID == "" {
		t.Errorf("newest run = %+v", runs[0])
	}
	if !runs[1].Failed() || !strings.Contains(runs[1].Error, "unknown style") {
		t.Errorf("failed run = %+v", runs[1])
	}

	out := callTool(t, ctx, session, "get_dissolution_history", map[string]any{"tool": "classify_dissolution_intent", "limit": 1})
	if got := out["runs"].([]any); len(got) != 1 {
		t.Errorf("history runs = %d", len(got))
	}
	totals := out["totals"].([]any)
	if len(totals) != 2 {
		t.Errorf("totals = %v", totals)
	}

	runs, _ = h.ListRuns(store.Filter{})
	if len(runs) != 3 {
		t.Errorf("history tool must not record itself, have %d runs", len(runs))
	}
}

func TestServer_HistoryPrune(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.History.Keep = 2
	h := store.NewMemStore()
	session := connectInMemory(t, ctx, newTestServer(t, cfg, mcpserver.WithHistory(h)))

	for i := 0; i < 5; i++ {
		callTool(t, ctx, session, "list_edge_modes", map[string]any{})
	}
	runs, _ := h.ListRuns(store.Filter{})
	if len(runs) > 3 {
		t.Errorf("history not bounded: %d runs", len(runs))
	}
}
