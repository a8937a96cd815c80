// Package gemini implements leadgen.SheetPublisher using Google Gemini.
// The model is given a sheet-creation tool and asked to build a spreadsheet
// from the flattened row set; the publisher runs the function-call loop and
// validates that the final answer contains a spreadsheet link.
package gemini

import (
	"context"
	"encoding/json"
	"strings"
	"unicode"

	"github.com/fwojciec/leadgen"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// SheetURLMarker identifies a Google Sheets locator in the agent's answer.
const SheetURLMarker = "https://docs.google.com/spreadsheets/d/"

// sheetAction is the tool action the model may call to create the sheet.
const sheetAction = "GOOGLESHEETS_SHEET_FROM_JSON"

// maxToolTurns bounds the function-call loop.
const maxToolTurns = 4

// SheetTool executes a named tool action and returns its result payload.
// composio.Client satisfies this interface.
type SheetTool interface {
	ExecuteAction(ctx context.Context, action string, input map[string]any) (string, error)
}

// Ensure Publisher implements leadgen.SheetPublisher at compile time.
var _ leadgen.SheetPublisher = (*Publisher)(nil)

// Publisher implements leadgen.SheetPublisher using Google Gemini.
type Publisher struct {
	client *genai.Client
	tool   SheetTool
}

// NewPublisher creates a new Publisher.
func NewPublisher(client *genai.Client, tool SheetTool) *Publisher {
	return &Publisher{client: client, tool: tool}
}

// Publish asks the model to create a spreadsheet from the rows and returns
// the sheet locator from its final answer. Any model or tool fault, and any
// answer without a recognizable locator, is an EUNAVAILABLE error.
func (p *Publisher) Publish(ctx context.Context, rows []leadgen.FlatRow) (string, error) {
	if len(rows) == 0 {
		return "", leadgen.Errorf(leadgen.EINVALID, "no rows to publish")
	}
	if p.tool == nil {
		return "", leadgen.Errorf(leadgen.EINVALID, "sheet tool required")
	}

	prompt, err := BuildUserPrompt(rows)
	if err != nil {
		return "", err
	}

	contents := []*genai.Content{{
		Role:  genai.RoleUser,
		Parts: []*genai.Part{{Text: prompt}},
	}}
	config := BuildConfig()

	for turn := 0; turn < maxToolTurns; turn++ {
		result, err := p.client.Models.GenerateContent(ctx, model, contents, config)
		if err != nil {
			return "", leadgen.Errorf(leadgen.EUNAVAILABLE, "spreadsheet agent: %s", err)
		}
		if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
			return "", leadgen.Errorf(leadgen.EUNAVAILABLE, "spreadsheet agent returned no candidates")
		}

		calls := result.FunctionCalls()
		if len(calls) == 0 {
			return ExtractSheetURL(result.Text())
		}

		contents = append(contents, result.Candidates[0].Content)

		parts := make([]*genai.Part, 0, len(calls))
		for _, call := range calls {
			response := map[string]any{}
			out, err := p.tool.ExecuteAction(ctx, call.Name, call.Args)
			if err != nil {
				response["error"] = leadgen.ErrorMessage(err)
			} else {
				response["result"] = out
			}
			parts = append(parts, &genai.Part{
				FunctionResponse: &genai.FunctionResponse{
					Name:     call.Name,
					Response: response,
				},
			})
		}
		contents = append(contents, &genai.Content{Role: genai.RoleUser, Parts: parts})
	}

	return "", leadgen.Errorf(leadgen.EUNAVAILABLE, "spreadsheet agent did not produce a sheet link")
}

// ExtractSheetURL returns the first Google Sheets locator embedded in text.
func ExtractSheetURL(text string) (string, error) {
	idx := strings.Index(text, SheetURLMarker)
	if idx < 0 {
		return "", leadgen.Errorf(leadgen.EUNAVAILABLE, "response contains no spreadsheet link")
	}

	rest := text[idx:]
	if end := strings.IndexFunc(rest, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(`)]>"'`, r)
	}); end >= 0 {
		rest = rest[:end]
	}

	return strings.TrimRight(rest, ".,"), nil
}

// BuildConfig returns the GenerateContentConfig for the publishing call,
// including the sheet-creation tool declaration.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are an assistant that publishes lead data to Google Sheets. " +
					"Use the " + sheetAction + " tool to create the sheet from the JSON you are given, " +
					"then reply with the link to the created spreadsheet.",
			}},
		},
		Temperature: &temp,
		Tools: []*genai.Tool{{
			FunctionDeclarations: []*genai.FunctionDeclaration{{
				Name:        sheetAction,
				Description: "Create a Google Sheet from a JSON array of row objects. Returns the spreadsheet URL.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"title": {
							Type:        genai.TypeString,
							Description: "Title for the new spreadsheet",
						},
						"sheet_json": {
							Type:        genai.TypeString,
							Description: "JSON array of row objects; object keys become column headers",
						},
					},
					Required: []string{"sheet_json"},
				},
			}},
		}},
	}
}

// BuildUserPrompt builds the user prompt containing the column instruction
// and the full row set as JSON.
func BuildUserPrompt(rows []leadgen.FlatRow) (string, error) {
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", leadgen.Errorf(leadgen.EINTERNAL, "marshal rows: %s", err)
	}

	var sb strings.Builder
	sb.WriteString("Create a Google Sheet with these columns: ")
	sb.WriteString(strings.Join(leadgen.ExportColumns, ", "))
	sb.WriteString(".\n\n")
	sb.Write(data)
	return sb.String(), nil
}
