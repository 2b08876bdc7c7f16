package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/adk"
	"github.com/cloudwego/eino/schema"
	"github.com/tbxark/lessonflow/agent"
	"github.com/tbxark/lessonflow/command"
)

func main() {
	conf := flag.String("config", "config.json", "path to config file")
	flag.Parse()
	config, err := loadConfig(*conf)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	err = startApp(context.Background(), config)
	if err != nil {
		log.Fatalf("start app: %v", err)
	}
}

func startApp(ctx context.Context, config *Config) error {
	slog.SetLogLoggerLevel(slog.LevelInfo)
	ctx = agent.WithStateKey(ctx, "console")
	cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:  config.APIKey,
		Model:   config.Model,
		BaseURL: config.BaseURL,
	})
	if err != nil {
		return err
	}
	store := agent.NewMemoryStateReadWriter()
	plannerAgent := agent.NewAgent(
		"LessonPlanner",
		"An agent that walks a teacher through preparing lessons and assessments",
		agent.NewChatModelLessonFlow(cm),
		store,
	)
	runner := adk.NewRunner(ctx, adk.RunnerConfig{
		Agent: plannerAgent,
	})

	options, err := send(ctx, runner, command.SignalShowStep)
	if err != nil {
		return err
	}
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("> ")
		input, rErr := reader.ReadString('\n')
		if rErr != nil {
			fmt.Println("Bye.")
			break
		}
		input = strings.TrimSpace(input)
		if n, cErr := strconv.Atoi(input); cErr == nil && n >= 1 && n <= len(options) {
			input = options[n-1]
		}
		options, err = send(ctx, runner, input)
		if err != nil {
			return err
		}
	}
	return nil
}

// send runs one turn and prints the reply with its numbered options.
func send(ctx context.Context, runner *adk.Runner, input string) ([]string, error) {
	iter := runner.Run(ctx, []adk.Message{schema.UserMessage(input)})
	var options []string
	for {
		event, ok := iter.Next()
		if !ok {
			break
		}
		if event.Err != nil {
			return nil, event.Err
		}
		msg, mErr := event.Output.MessageOutput.GetMessage()
		if mErr != nil {
			return nil, mErr
		}
		options, _ = msg.Extra[agent.ExtraOptions].([]string)
		fmt.Printf("\n%v\n", msg.Content)
		for i, opt := range options {
			fmt.Printf("  %d. %s\n", i+1, opt)
		}
		fmt.Println("======")
	}
	return options, nil
}
