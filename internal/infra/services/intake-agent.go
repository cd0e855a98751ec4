package services

import (
	"context"
	"fmt"

	"insurance-intake/internal/domain/entities"
	"insurance-intake/internal/domain/serviceerrors"
	"insurance-intake/internal/infra/logger"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"
)

const (
	extractionToolName = "record_vehicle_info"
	extractionToolDesc = "Record everything learned so far about the applicant and the vehicle, decide whether the application is complete, and pick the next question to ask."
)

// IntakeAgent drives the dialogue model. Every turn it forces the model
// to answer through the extraction tool, so the response is always a
// structured text blob rather than free prose.
type IntakeAgent struct {
	chatModel    model.ToolCallingChatModel
	toolInfo     *schema.ToolInfo
	systemPrompt string
	Logger       *logger.Logger
}

func NewIntakeAgent(chatModel model.ToolCallingChatModel, systemPrompt string, log *logger.Logger) (*IntakeAgent, error) {
	toolInfo, err := utils.GoStruct2ToolInfo[entities.VehicleInfo](extractionToolName, extractionToolDesc)
	if err != nil {
		return nil, fmt.Errorf("convert tool info failed: %w", err)
	}
	return &IntakeAgent{
		chatModel:    chatModel,
		toolInfo:     toolInfo,
		systemPrompt: systemPrompt,
		Logger:       log,
	}, nil
}

func (a *IntakeAgent) SystemPrompt() string {
	return a.systemPrompt
}

// Respond sends the conversation to the model and returns the raw
// structured-output text. An empty return with a nil error means the
// model answered without usable text; callers decide how to degrade.
func (a *IntakeAgent) Respond(ctx context.Context, history []entities.Message) (string, error) {
	messages := make([]*schema.Message, 0, len(history)+1)
	messages = append(messages, schema.SystemMessage(a.systemPrompt))
	for _, m := range history {
		switch m.Role {
		case entities.RoleAssistant:
			messages = append(messages, schema.AssistantMessage(m.Content, nil))
		case entities.RoleSystem:
			messages = append(messages, schema.SystemMessage(m.Content))
		default:
			messages = append(messages, schema.UserMessage(m.Content))
		}
	}

	response, err := a.chatModel.Generate(ctx, messages,
		model.WithTools([]*schema.ToolInfo{a.toolInfo}),
		model.WithToolChoice(schema.ToolChoiceForced, a.toolInfo.Name),
	)
	if err != nil {
		a.Logger.Error(fmt.Sprintf("The following error happened while generating the response: %v", err))
		return "", fmt.Errorf("%w: %v", serviceerrors.ErrAgentUnavailable, err)
	}

	if len(response.ToolCalls) == 0 {
		// No tool call: fall back to plain content, which may be empty.
		return response.Content, nil
	}
	return response.ToolCalls[0].Function.Arguments, nil
}
