package services

import (
	"context"
	"fmt"

	"insurance-intake/internal/domain/dto"
	"insurance-intake/internal/domain/entities"
	"insurance-intake/internal/domain/interfaces/repository"
	Iservices "insurance-intake/internal/domain/interfaces/services"
	"insurance-intake/internal/domain/serviceerrors"
	"insurance-intake/internal/infra/logger"

	"github.com/bytedance/sonic"
)

const (
	agentUnavailableReply = "The Agent is unavailable at the moment"
	completionReply       = "Thank you for providing all the necessary information. Here is your insurance quota..."
	duplicateReplyFormat  = "There is already a record for licence plate %s. Please check if you entered the correct details."
)

// ChatService orchestrates one chat turn: it resolves the session, runs
// the intake agent over the history, decides between duplicate, complete
// and next-question outcomes, and persists the results.
type ChatService struct {
	Logger      *logger.Logger
	Sessions    repository.SessionRepository
	Records     repository.RecordRepository
	IntakeAgent Iservices.IIntakeAgent
}

func NewChatService(log *logger.Logger, sessions repository.SessionRepository, records repository.RecordRepository, intakeAgent Iservices.IIntakeAgent) *ChatService {
	return &ChatService{Logger: log, Sessions: sessions, Records: records, IntakeAgent: intakeAgent}
}

func (cs *ChatService) ProcessTurn(ctx context.Context, sessionID string, message string) (dto.ChatResponse, error) {
	resolvedID, history, err := cs.Sessions.GetOrCreate(ctx, sessionID)
	if err != nil {
		cs.Logger.Error(fmt.Sprintf("Failed to resolve session: %v", err))
		return dto.ChatResponse{}, err
	}

	history = append(history, entities.Message{Role: entities.RoleUser, Content: message})

	raw, err := cs.IntakeAgent.Respond(ctx, history)
	if err != nil {
		cs.Logger.Error(fmt.Sprintf("Failed to execute intake agent for session %s: %v", resolvedID, err))
		return dto.ChatResponse{}, err
	}
	if raw == "" {
		// The model answered without text. Softer than an agent failure:
		// the turn succeeds with an apology and nothing is persisted.
		return dto.ChatResponse{
			SessionID:     resolvedID,
			AgentResponse: agentUnavailableReply,
			Complete:      false,
		}, nil
	}

	history = append(history, entities.Message{Role: entities.RoleAssistant, Content: raw})

	var extraction entities.VehicleInfo
	if err := sonic.UnmarshalString(raw, &extraction); err != nil {
		cs.Logger.Error(fmt.Sprintf("Failed to parse agent response for session %s: %v", resolvedID, err))
		return dto.ChatResponse{}, fmt.Errorf("%w: %v", serviceerrors.ErrMalformedAgentResponse, err)
	}

	var reply string
	complete := false
	duplicate := false

	if extraction.LicencePlateNumber != "" {
		exists, err := cs.Records.ExistsByPlate(ctx, extraction.LicencePlateNumber)
		if err != nil {
			cs.Logger.Error(fmt.Sprintf("Failed to check for duplicate record: %v", err))
			return dto.ChatResponse{}, err
		}
		if exists {
			duplicate = true
			reply = fmt.Sprintf(duplicateReplyFormat, extraction.LicencePlateNumber)
			history = append(history, entities.Message{Role: entities.RoleAssistant, Content: reply})
		}
	}

	// A duplicate takes priority over completion: even when the agent
	// marks the turn complete, no record is saved for a known plate.
	if !duplicate {
		if extraction.Complete {
			var formData map[string]any
			if err := sonic.UnmarshalString(raw, &formData); err != nil {
				return dto.ChatResponse{}, fmt.Errorf("%w: %v", serviceerrors.ErrMalformedAgentResponse, err)
			}
			formData["session_id"] = resolvedID

			if err := cs.Records.Save(ctx, extraction.LicencePlateNumber, formData, cs.IntakeAgent.SystemPrompt()); err != nil {
				cs.Logger.Error(fmt.Sprintf("Failed to save record for session %s: %v", resolvedID, err))
				return dto.ChatResponse{}, err
			}
			reply = completionReply
			complete = true
		} else {
			if extraction.NextQuestion == "" {
				return dto.ChatResponse{}, serviceerrors.ErrMissingNextQuestion
			}
			reply = extraction.NextQuestion
		}
	}

	// The record save above deliberately precedes the session update, so
	// a completed record survives even if this write fails.
	if err := cs.Sessions.UpdateHistory(ctx, resolvedID, history); err != nil {
		cs.Logger.Error(fmt.Sprintf("Failed to update session %s: %v", resolvedID, err))
		return dto.ChatResponse{}, err
	}

	return dto.ChatResponse{
		SessionID:     resolvedID,
		AgentResponse: reply,
		Complete:      complete,
	}, nil
}
