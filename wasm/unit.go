package wasm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tetratelabs/wazero/api"

	"github.com/gauntletsec/gauntlet/module"
)

// Well-known guest exports.
const (
	exportAllocate     = "allocate"
	exportOptions      = "options"
	exportDescribe     = "describe"
	exportAPIVersion   = "api_version"
	exportTransform    = "transform"
	exportProcessInput = "process_input"
	exportEvaluate     = "evaluate"
	exportPayload      = "payload"
)

// Unit is one instantiated WASM extension unit. It exposes every
// kind-specific entry point; calling an entry point the guest does not
// export fails at call time, mirroring how the provenance directory, not
// the unit itself, determines a unit's kind.
type Unit struct {
	name string
	mod  api.Module
}

// Name returns the unit name (the unit's file name without extension).
func (u *Unit) Name() string {
	return u.name
}

// Options implements module.OptionsProvider. A guest without an `options`
// export declares nothing and gets the defaults.
func (u *Unit) Options() ([]string, bool, error) {
	ctx := context.Background()
	if u.mod.ExportedFunction(exportOptions) == nil {
		return nil, false, nil
	}

	payload, err := u.callRaw(ctx, exportOptions, nil)
	if err != nil {
		return nil, false, err
	}

	var decl struct {
		Variants  []string `json:"variants"`
		UsesModel bool     `json:"uses_model"`
	}
	if err := decodeValidated(payload, optionsSchema, &decl); err != nil {
		return nil, false, fmt.Errorf("options declaration: %w", err)
	}
	return decl.Variants, decl.UsesModel, nil
}

// Describe implements module.Describer. A guest without a `describe`
// export declares nothing and gets the defaults.
func (u *Unit) Describe() ([]module.Tag, string, error) {
	ctx := context.Background()
	if u.mod.ExportedFunction(exportDescribe) == nil {
		return nil, "", nil
	}

	payload, err := u.callRaw(ctx, exportDescribe, nil)
	if err != nil {
		return nil, "", err
	}

	var decl struct {
		Tags        []module.Tag `json:"tags"`
		Description string       `json:"description"`
	}
	if err := decodeValidated(payload, describeSchema, &decl); err != nil {
		return nil, "", fmt.Errorf("describe declaration: %w", err)
	}
	return decl.Tags, decl.Description, nil
}

// Transform implements module.Transformer over the `transform` export.
func (u *Unit) Transform(ctx context.Context, text string, log *module.ContextLog, opts module.Options) (string, error) {
	input, err := json.Marshal(struct {
		Text    string         `json:"text"`
		Options module.Options `json:"options"`
	}{text, opts})
	if err != nil {
		return "", err
	}

	payload, err := u.callRaw(ctx, exportTransform, input)
	if err != nil {
		return "", err
	}

	var out struct {
		Text string `json:"text"`
		Log  []any  `json:"log,omitempty"`
	}
	if err := json.Unmarshal(payload, &out); err != nil {
		return "", fmt.Errorf("decode transform result: %w", err)
	}
	appendRecords(log, out.Log)
	return out.Text, nil
}

// ProcessInput implements module.Target over the `process_input` export.
func (u *Unit) ProcessInput(ctx context.Context, input string, opts module.Options) (string, error) {
	payload, err := u.callJSON(ctx, exportProcessInput, struct {
		Input   string         `json:"input"`
		Options module.Options `json:"options"`
	}{input, opts})
	if err != nil {
		return "", err
	}

	var out struct {
		Output string `json:"output"`
	}
	if err := json.Unmarshal(payload, &out); err != nil {
		return "", fmt.Errorf("decode process_input result: %w", err)
	}
	return out.Output, nil
}

// Evaluate implements module.Judge over the `evaluate` export.
func (u *Unit) Evaluate(ctx context.Context, input, response string, opts module.Options) (bool, error) {
	payload, err := u.callJSON(ctx, exportEvaluate, struct {
		Input    string         `json:"input"`
		Response string         `json:"response"`
		Options  module.Options `json:"options"`
	}{input, response, opts})
	if err != nil {
		return false, err
	}

	var out struct {
		Passed bool `json:"passed"`
	}
	if err := json.Unmarshal(payload, &out); err != nil {
		return false, fmt.Errorf("decode evaluate result: %w", err)
	}
	return out.Passed, nil
}

// Payload implements module.Attack over the `payload` export.
func (u *Unit) Payload(ctx context.Context, seed string, log *module.ContextLog, opts module.Options) (string, error) {
	payload, err := u.callJSON(ctx, exportPayload, struct {
		Seed    string         `json:"seed"`
		Options module.Options `json:"options"`
	}{seed, opts})
	if err != nil {
		return "", err
	}

	var out struct {
		Payload string `json:"payload"`
		Log     []any  `json:"log,omitempty"`
	}
	if err := json.Unmarshal(payload, &out); err != nil {
		return "", fmt.Errorf("decode payload result: %w", err)
	}
	appendRecords(log, out.Log)
	return out.Payload, nil
}

func (u *Unit) checkAPIVersion(ctx context.Context) error {
	if u.mod.ExportedFunction(exportAPIVersion) == nil {
		return nil
	}

	payload, err := u.callRaw(ctx, exportAPIVersion, nil)
	if err != nil {
		return fmt.Errorf("query api_version: %w", err)
	}

	var version string
	if err := json.Unmarshal(payload, &version); err != nil {
		return fmt.Errorf("decode api_version: %w", err)
	}
	return APIVersionSupported(version)
}

// callJSON marshals input, invokes the export and returns the raw result
// payload.
func (u *Unit) callJSON(ctx context.Context, name string, input any) ([]byte, error) {
	data, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}
	return u.callRaw(ctx, name, data)
}

// callRaw invokes a guest export with raw bytes. Input is written into
// guest memory allocated by the guest's `allocate` export; the result is
// read back from the packed (ptr<<32)|len return word.
func (u *Unit) callRaw(ctx context.Context, name string, input []byte) ([]byte, error) {
	fn := u.mod.ExportedFunction(name)
	if fn == nil {
		return nil, fmt.Errorf("function %q not exported by %s", name, u.name)
	}

	var packedInput uint64
	if len(input) > 0 {
		allocate := u.mod.ExportedFunction(exportAllocate)
		if allocate == nil {
			return nil, fmt.Errorf("function %q not exported by %s", exportAllocate, u.name)
		}
		res, err := allocate.Call(ctx, uint64(len(input)))
		if err != nil {
			return nil, fmt.Errorf("allocate failed: %w", err)
		}
		ptr := res[0]
		//nolint:gosec // WASM pointers are 32-bit
		if !u.mod.Memory().Write(uint32(ptr), input) {
			return nil, fmt.Errorf("write input to guest memory at ptr=%d", ptr)
		}
		packedInput = packPtrLen(uint32(ptr), uint32(len(input)))
	}

	res, err := fn.Call(ctx, packedInput)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", name, err)
	}
	return u.readPacked(res[0])
}

// readPacked copies the result payload out of guest memory before the
// guest gets another chance to grow or reuse it.
func (u *Unit) readPacked(packed uint64) ([]byte, error) {
	ptr, length := unpackPtrLen(packed)
	if length == 0 {
		return nil, nil
	}
	data, ok := u.mod.Memory().Read(ptr, length)
	if !ok {
		return nil, fmt.Errorf("read result from guest memory at ptr=%d, len=%d", ptr, length)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func appendRecords(log *module.ContextLog, records []any) {
	if log == nil {
		return
	}
	for _, record := range records {
		log.Append(record)
	}
}

func packPtrLen(ptr, length uint32) uint64 {
	return uint64(ptr)<<32 | uint64(length)
}

func unpackPtrLen(packed uint64) (ptr, length uint32) {
	//nolint:gosec // WASM pointers and lengths are 32-bit
	return uint32(packed >> 32), uint32(packed)
}
