// Code Agent - A CLI coding assistant powered by Google ADK Go
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/model/gemini"
	"google.golang.org/adk/runner"
	"google.golang.org/genai"

	codingagent "diffagent/agent"
	"diffagent/display"
	"diffagent/internal/diffapply"
	"diffagent/persistence"
	"diffagent/tools/file"
	"diffagent/tracking"
)

const version = "1.0.0"

func main() {
	ctx := context.Background()

	// Parse command-line flags
	outputFormat := flag.String("output-format", "rich", "Output format: rich, plain, or json")
	typewriterEnabled := flag.Bool("typewriter", false, "Enable typewriter effect for text output")
	sessionName := flag.String("session", "", "Session name (optional, defaults to a new session-YYYYMMDD-HHMMSS name)")
	dbPath := flag.String("db", "", "Database path for sessions (optional, defaults to ~/.diffagent/sessions.db)")
	diffLargeFileThreshold := flag.Int("diff-large-file-threshold", diffapply.LargeFileThreshold,
		"Byte size above which the diff engine builds a line index instead of scanning linearly")
	flag.Parse()
	diffapply.SetLargeFileThreshold(*diffLargeFileThreshold)

	// Handle special commands (new-session, list-sessions, etc.)
	args := flag.Args()
	if len(args) > 0 {
		cmd := args[0]
		if cmd == "new-session" {
			if len(args) < 2 {
				fmt.Println("Usage: code-agent new-session <session-name>")
				os.Exit(1)
			}
			handleNewSession(ctx, args[1], *dbPath)
			os.Exit(0)
		} else if cmd == "list-sessions" {
			handleListSessions(ctx, *dbPath)
			os.Exit(0)
		} else if cmd == "delete-session" {
			if len(args) < 2 {
				fmt.Println("Usage: code-agent delete-session <session-name>")
				os.Exit(1)
			}
			handleDeleteSession(ctx, args[1], *dbPath)
			os.Exit(0)
		}
	}

	// Generate unique session name if not specified
	// This ensures each run without --session gets a new session
	if *sessionName == "" {
		*sessionName = generateUniqueSessionName()
	}

	// Create renderer
	renderer, err := display.NewRenderer(*outputFormat)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}

	bannerRenderer := display.NewBannerRenderer(renderer)

	// Create typewriter printer
	typewriter := display.NewTypewriterPrinter(display.DefaultTypewriterConfig())
	typewriter.SetEnabled(*typewriterEnabled)

	// Create streaming display
	streamingDisplay := display.NewStreamingDisplay(renderer, typewriter)

	// Get API key from environment
	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		log.Fatal("GOOGLE_API_KEY environment variable is required")
	}

	// Get working directory
	workingDir, err := os.Getwd()
	if err != nil {
		log.Fatalf("Failed to get working directory: %v", err)
	}

	// Print welcome banner
	modelName := "gemini-2.5-flash"
	banner := bannerRenderer.RenderStartBanner(version, modelName, workingDir)
	fmt.Print(banner)

	// Create Gemini model
	model, err := gemini.NewModel(ctx, "gemini-2.5-flash", &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		log.Fatalf("Failed to create model: %v", err)
	}

	// Create coding agent
	codingAgent, err := codingagent.NewCodingAgent(ctx, codingagent.Config{
		Model:            model,
		WorkingDirectory: workingDir,
	})
	if err != nil {
		log.Fatalf("Failed to create coding agent: %v", err)
	}

	// Create session manager with persistent storage
	sessionManager, err := persistence.NewSessionManager("diffagent", *dbPath)
	if err != nil {
		log.Fatalf("Failed to create session manager: %v", err)
	}
	defer sessionManager.Close()

	// Get or create the session
	userID := "user1"
	sess, err := sessionManager.GetSession(ctx, userID, *sessionName)
	if err != nil {
		// Session doesn't exist, create it
		sess, err = sessionManager.CreateSession(ctx, userID, *sessionName)
		if err != nil {
			log.Fatalf("Failed to create session: %v", err)
		}
		fmt.Printf("✨ Created new session: %s\n\n", *sessionName)
	} else {
		fmt.Printf("📖 Resumed session: %s (%d events)\n\n", *sessionName, sess.Events().Len())
	}

	// Record every search_replace/streaming_search_replace result to the
	// session's diff-application history.
	diffRecorder := persistence.NewDiffApplicationRecorder(sessionManager, userID, *sessionName)

	// Create runner with persistent session service
	sessionService := sessionManager.GetService()
	agentRunner, err := runner.New(runner.Config{
		AppName:        "diffagent",
		Agent:          codingAgent,
		SessionService: sessionService,
	})
	if err != nil {
		log.Fatalf("Failed to create runner: %v", err)
	}

	// Initialize token tracking
	sessionTokens := tracking.NewSessionTokens()

	// Show welcome message
	welcome := bannerRenderer.RenderWelcome()
	fmt.Print(welcome)

	// Interactive loop
	scanner := bufio.NewScanner(os.Stdin)

	for {
		// Show prompt
		promptText := renderer.Bold("❯") + " "
		fmt.Print(renderer.Cyan(promptText))

		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		if input == "/exit" || input == "/quit" {
			goodbye := renderer.Cyan("Goodbye! Happy coding! 👋")
			fmt.Printf("\n%s\n", goodbye)
			break
		}

		// Debug command to show system prompt
		if input == "/prompt" {
			fmt.Print(renderer.Yellow("\n=== System Prompt ===\n\n"))
			fmt.Print(renderer.Dim(codingagent.EnhancedSystemPrompt))
			fmt.Print(renderer.Yellow("\n\n=== End of Prompt ===\n\n"))
			continue
		}

		// Debug command to feed a SEARCH/REPLACE diff to the engine by hand,
		// one line at a time, the way a streamed model response would arrive.
		// Usage: /apply-diff <path>, then paste diff lines, then a bare
		// "END" line to close the stream and apply it.
		if strings.HasPrefix(input, "/apply-diff ") {
			targetPath := strings.TrimSpace(strings.TrimPrefix(input, "/apply-diff "))
			if targetPath == "" {
				fmt.Print(renderer.Yellow("\nUsage: /apply-diff <path>\n\n"))
				continue
			}

			original, err := os.ReadFile(targetPath)
			if err != nil {
				fmt.Print(renderer.Yellow(fmt.Sprintf("\nFailed to read %s: %v\n\n", targetPath, err)))
				continue
			}

			fmt.Print(renderer.Dim("\nPaste diff lines, then a line containing only END:\n"))
			var diffBuf []byte
			var result diffapply.FileChangeResult
			var applyErr error
			for scanner.Scan() {
				line := scanner.Text()
				if strings.TrimSpace(line) == "END" {
					result, applyErr = diffapply.ApplyDiffChunk(diffBuf, original, true)
					break
				}
				diffBuf = append(diffBuf, []byte(line)...)
				diffBuf = append(diffBuf, '\n')
				result, applyErr = diffapply.ApplyDiffChunk(diffBuf, original, false)
			}

			if applyErr != nil {
				fmt.Print(renderer.Yellow(fmt.Sprintf("\nFailed to apply diff: %v\n\n", applyErr)))
				continue
			}

			if err := file.AtomicWrite(targetPath, result.Content, 0644); err != nil {
				fmt.Print(renderer.Yellow(fmt.Sprintf("\nFailed to write %s: %v\n\n", targetPath, err)))
				continue
			}

			fmt.Print(renderer.Cyan(fmt.Sprintf("\nApplied %d region(s) to %s\n\n", len(result.ChangedRegions), targetPath)))
			continue
		}

		// Help command
		if input == "/help" {
			fmt.Print("\n" + renderer.Cyan("════════════════════════════════════════════════════════════════\n"))
			fmt.Print(renderer.Cyan("                       Code Agent Help\n"))
			fmt.Print(renderer.Cyan("════════════════════════════════════════════════════════════════\n") + "\n")

			fmt.Print(renderer.Bold("🤖 Natural Language Requests:\n"))
			fmt.Print("   Just type what you want in plain English!\n\n")

			fmt.Print(renderer.Bold("⌨️  Built-in Commands:\n"))
			fmt.Print("   • " + renderer.Bold("/help") + " - Show this help message\n")
			fmt.Print("   • " + renderer.Bold("/tools") + " - List all available tools\n")
			fmt.Print("   • " + renderer.Bold("/prompt") + " - Display the system prompt\n")
			fmt.Print("   • " + renderer.Bold("/apply-diff <path>") + " - Feed a SEARCH/REPLACE diff to the engine by hand, line by line\n")
			fmt.Print("   • " + renderer.Bold("/tokens") + " - Show token usage statistics\n")
			fmt.Print("   • " + renderer.Bold("/exit") + " - Exit the agent\n")

			fmt.Print(renderer.Bold("\n📚 Session Management (CLI commands):\n"))
			fmt.Print("   • " + renderer.Bold("./code-agent new-session <name>") + " - Create a new session\n")
			fmt.Print("   • " + renderer.Bold("./code-agent list-sessions") + " - List all sessions\n")
			fmt.Print("   • " + renderer.Bold("./code-agent delete-session <name>") + " - Delete a session\n")
			fmt.Print("   • " + renderer.Bold("./code-agent --session <name>") + " - Resume a specific session\n")

			fmt.Print(renderer.Bold("\n💡 Example Requests:\n"))
			fmt.Print("   ❯ Add error handling to main.go\n")
			fmt.Print("   ❯ Create a README.md with project overview\n")
			fmt.Print("   ❯ Refactor the calculate function\n")
			fmt.Print("   ❯ Run tests and fix any failures\n")
			fmt.Print("   ❯ Add comments to all Python files\n\n")

			fmt.Print(renderer.Yellow("📖 More info: ") + "See USER_GUIDE.md for detailed documentation\n\n")
			continue
		}

		// Tools listing command
		if input == "/tools" {
			fmt.Print("\n" + renderer.Cyan("════════════════════════════════════════════════════════════════\n"))
			fmt.Print(renderer.Cyan("                    Available Tools\n"))
			fmt.Print(renderer.Cyan("════════════════════════════════════════════════════════════════\n") + "\n")

			fmt.Print(renderer.Bold("📝 Core Editing Tools:\n"))
			fmt.Print("   ✓ " + renderer.Bold("read_file") + " - Read file contents (supports line ranges)\n")
			fmt.Print("   ✓ " + renderer.Bold("write_file") + " - Create or overwrite files (atomic, safe)\n")
			fmt.Print("   ✓ " + renderer.Bold("search_replace") + " - Make targeted changes (RECOMMENDED)\n")
			fmt.Print("   ✓ " + renderer.Bold("edit_lines") + " - Edit by line number (structural changes)\n")
			fmt.Print("   ✓ " + renderer.Bold("apply_patch") + " - Apply unified diff patches (standard)\n")
			fmt.Print("   ✓ " + renderer.Bold("apply_v4a_patch") + " - Apply V4A semantic patches (NEW!)\n")

			fmt.Print(renderer.Bold("\n🔍 Discovery Tools:\n"))
			fmt.Print("   ✓ " + renderer.Bold("list_directory") + " - Explore directory structure\n")
			fmt.Print("   ✓ " + renderer.Bold("search_files") + " - Find files by pattern (*.go, test_*.py)\n")
			fmt.Print("   ✓ " + renderer.Bold("grep_search") + " - Search text in files (with line numbers)\n")

			fmt.Print(renderer.Bold("\n⚡ Execution Tools:\n"))
			fmt.Print("   ✓ " + renderer.Bold("execute_command") + " - Run shell commands (pipes, redirects)\n")
			fmt.Print("   ✓ " + renderer.Bold("execute_program") + " - Run programs directly (no quoting issues)\n\n")

			fmt.Print("💡 Tip: Type " + renderer.Cyan("'/help'") + " for usage examples and patterns\n\n")
			continue
		}

		// Token usage reporting command
		if input == "/tokens" {
			summary := sessionTokens.GetSummary()
			fmt.Print(tracking.FormatSessionSummary(summary))
			continue
		}

		// Create user message
		userMsg := &genai.Content{
			Role: genai.RoleUser,
			Parts: []*genai.Part{
				{Text: input},
			},
		}

		// Run agent with enhanced spinner
		spinner := display.NewSpinner(renderer, "Agent is thinking")
		spinner.Start()

		hasError := false
		var activeToolName string
		toolRunning := false
		requestID := fmt.Sprintf("req_%d", sessionTokens.GetSummary().RequestCount+1)

		for event, err := range agentRunner.Run(ctx, userID, *sessionName, userMsg, agent.RunConfig{
			StreamingMode: agent.StreamingModeNone,
		}) {
			if err != nil {
				spinner.StopWithError("Error occurred")
				errMsg := renderer.RenderError(err)
				fmt.Print(errMsg)
				hasError = true
				break
			}

			if event != nil {
				printEventEnhanced(renderer, streamingDisplay, event, spinner, &activeToolName, &toolRunning, sessionTokens, requestID, diffRecorder)
			}
		}

		// Stop spinner and show completion
		if !hasError {
			spinner.StopWithSuccess("Task completed")
			completion := renderer.RenderTaskComplete()
			fmt.Print(completion)
		} else {
			failure := renderer.RenderTaskFailed()
			fmt.Print(failure)
		}
	}

	if err := scanner.Err(); err != nil {
		log.Fatalf("Error reading input: %v", err)
	}
}

// handleNewSession creates a new session
func handleNewSession(ctx context.Context, sessionName string, dbPath string) {
	manager, err := persistence.NewSessionManager("diffagent", dbPath)
	if err != nil {
		log.Fatalf("Failed to create session manager: %v", err)
	}
	defer manager.Close()

	userID := "user1"
	_, err = manager.CreateSession(ctx, userID, sessionName)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	fmt.Printf("✨ Created new session: %s\n", sessionName)
}

// handleListSessions lists all sessions
func handleListSessions(ctx context.Context, dbPath string) {
	manager, err := persistence.NewSessionManager("diffagent", dbPath)
	if err != nil {
		log.Fatalf("Failed to create session manager: %v", err)
	}
	defer manager.Close()

	userID := "user1"
	sessions, err := manager.ListSessions(ctx, userID)
	if err != nil {
		log.Fatalf("Failed to list sessions: %v", err)
	}

	if len(sessions) == 0 {
		fmt.Println("📭 No sessions found")
		return
	}

	fmt.Println("📋 Sessions:")
	for i, sess := range sessions {
		eventCount := sess.Events().Len()
		fmt.Printf("%d. %s (%d events)\n", i+1, sess.ID(), eventCount)
	}
}

// handleDeleteSession deletes a session
func handleDeleteSession(ctx context.Context, sessionName string, dbPath string) {
	manager, err := persistence.NewSessionManager("diffagent", dbPath)
	if err != nil {
		log.Fatalf("Failed to create session manager: %v", err)
	}
	defer manager.Close()

	userID := "user1"
	err = manager.DeleteSession(ctx, userID, sessionName)
	if err != nil {
		log.Fatalf("Failed to delete session: %v", err)
	}

	fmt.Printf("🗑️  Deleted session: %s\n", sessionName)
}

// generateUniqueSessionName creates a unique session name based on timestamp
// Format: session-YYYYMMDD-HHMMSS (e.g., session-20251110-221530)
func generateUniqueSessionName() string {
	now := time.Now()
	return fmt.Sprintf("session-%d%02d%02d-%02d%02d%02d",
		now.Year(),
		now.Month(),
		now.Day(),
		now.Hour(),
		now.Minute(),
		now.Second())
}
