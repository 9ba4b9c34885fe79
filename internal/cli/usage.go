// Package cli provides help text and usage formatting for the irtus CLI.
package cli

import (
	"github.com/spf13/cobra"
)

const helpTemplate = `irtus - Irtus Business advisory site and AI pitch deck engine

USAGE
  irtus serve [flags]
  irtus generate --company-name <name> --problem <text> [flags]

COMMANDS
  serve                                  Serve the advisory site, deck API and metrics
  generate                               Generate one pitch deck and print it

GLOBAL FLAGS
  Provider & Models:
    --provider <gemini|openai>           Generation provider (default: gemini)
    --gemini-model <model>               Gemini model (default: gemini-2.5-flash-preview-09-2025)
    --gemini-base-url <url>              Gemini API base URL
    --openai-model <model>               OpenAI model (default: gpt-4o-mini)
    --openai-base-url <url>              OpenAI-compatible API base URL

  Retry Policy:
    --max-retries <int>                  Retries after the first attempt (default: 5)
    --base-delay-ms <int>                Backoff base delay; retry k waits 2^k * base (default: 1000)
    --backoff-cap-ms <int>               Longest wait between attempts (default: 0, no cap)
    --retry-policy <all|transient>       Retry every failure or only transport/empty ones (default: all)
    --request-timeout <int>              Seconds before a generation is abandoned (default: 0, none)

  Config Files:
    --config <path>                      Path to additional config file
    --env-file <path>                    Path to dotenv file (default: .env)

  Feature Toggles:
    -v, --verbose                        Enable debug logging

SERVE FLAGS
    -l, --listen <addr>                  HTTP listen address (default: :8080)

GENERATE FLAGS
    --company-name <name>                Company name (required)
    --problem <text>                     Problem the company solves (required)
    --solution <text>                    The company's solution
    --target-market <text>               Target market
    --revenue-model <text>               How the company makes money
    -i, --input <path>                   JSON file with the venture input
    -f, --format <text|json|markdown>    Output format (default: text)

  Help & Version:
    -h, --help                           Show this help text
    --version                            Show version, commit, build date

ENVIRONMENT
  GEMINI_API_KEY / OPENAI_API_KEY        Provider credential (never passed as a flag)

EXIT CODES
  0   Success              Server stopped cleanly or deck generated
  1   Error                Invalid arguments, file not found, misconfiguration
  2   InputInvalid         Company name or problem missing
  3   GenerationFailed     Retry budget exhausted without a deck
  130 Interrupted          SIGINT or SIGTERM received

EXAMPLES
  # Serve the site on the default port
  irtus serve

  # Generate a deck in the terminal
  irtus generate --company-name EcoWatt --problem "grid outages"

  # Download a deck as Markdown using OpenAI
  irtus generate --provider openai -i venture.json -f markdown > deck.md
`

// SetCustomHelp configures the cobra command to use our custom help template.
func SetCustomHelp(cmd *cobra.Command) {
	cmd.SetHelpTemplate(helpTemplate)
}
