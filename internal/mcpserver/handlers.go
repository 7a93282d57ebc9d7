package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/grimward/charkeeper/internal/game/roster"
)

// createCharacterHandler executes a character creation request.
func createCharacterHandler(svc *roster.Service) mcp.ToolHandlerFor[CreateCharacterInput, CreateCharacterResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateCharacterInput) (*mcp.CallToolResult, CreateCharacterResult, error) {
		created, err := svc.Create(ctx, payloadToDomain(input.Character))
		if err != nil {
			return nil, CreateCharacterResult{}, err
		}
		return nil, CreateCharacterResult{Character: payloadFromDomain(created)}, nil
	}
}

// getCharacterHandler executes a single-character lookup.
func getCharacterHandler(svc *roster.Service) mcp.ToolHandlerFor[GetCharacterInput, GetCharacterResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetCharacterInput) (*mcp.CallToolResult, GetCharacterResult, error) {
		c, err := svc.Get(ctx, input.CharacterID)
		if err != nil {
			return nil, GetCharacterResult{}, err
		}
		return nil, GetCharacterResult{Character: payloadFromDomain(c)}, nil
	}
}

// playerCharactersHandler executes a per-player character query.
func playerCharactersHandler(svc *roster.Service) mcp.ToolHandlerFor[PlayerCharactersInput, PlayerCharactersResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PlayerCharactersInput) (*mcp.CallToolResult, PlayerCharactersResult, error) {
		chars, err := svc.ListByPlayer(ctx, input.PlayerID)
		if err != nil {
			return nil, PlayerCharactersResult{}, err
		}
		return nil, PlayerCharactersResult{Characters: payloadsFromDomain(chars)}, nil
	}
}

// updateCharacterHandler executes a full-record replacement.
func updateCharacterHandler(svc *roster.Service) mcp.ToolHandlerFor[UpdateCharacterInput, UpdateCharacterResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input UpdateCharacterInput) (*mcp.CallToolResult, UpdateCharacterResult, error) {
		updated, found, err := svc.Update(ctx, input.CharacterID, payloadToDomain(input.Character))
		if err != nil {
			return nil, UpdateCharacterResult{}, err
		}
		if !found {
			return nil, UpdateCharacterResult{Found: false}, nil
		}
		p := payloadFromDomain(updated)
		return nil, UpdateCharacterResult{Found: true, Character: &p}, nil
	}
}

// addExperienceHandler executes an experience grant.
func addExperienceHandler(svc *roster.Service) mcp.ToolHandlerFor[AddExperienceInput, AddExperienceResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddExperienceInput) (*mcp.CallToolResult, AddExperienceResult, error) {
		updated, found, err := svc.AddExperience(ctx, input.CharacterID, input.Experience)
		if err != nil {
			return nil, AddExperienceResult{}, err
		}
		if !found {
			return nil, AddExperienceResult{Found: false}, nil
		}
		p := payloadFromDomain(updated)
		return nil, AddExperienceResult{Found: true, Character: &p}, nil
	}
}

// progressionInfoHandler executes a progression report.
func progressionInfoHandler(svc *roster.Service) mcp.ToolHandlerFor[ProgressionInfoInput, ProgressionInfoResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ProgressionInfoInput) (*mcp.CallToolResult, ProgressionInfoResult, error) {
		p, found, err := svc.ProgressionInfo(ctx, input.CharacterID)
		if err != nil {
			return nil, ProgressionInfoResult{}, err
		}
		if !found {
			return nil, ProgressionInfoResult{Found: false}, nil
		}
		return nil, progressionResult(p), nil
	}
}

// deleteCharacterHandler executes a character deletion.
func deleteCharacterHandler(svc *roster.Service) mcp.ToolHandlerFor[DeleteCharacterInput, DeleteCharacterResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DeleteCharacterInput) (*mcp.CallToolResult, DeleteCharacterResult, error) {
		if err := svc.Delete(ctx, input.CharacterID); err != nil {
			return nil, DeleteCharacterResult{}, err
		}
		return nil, DeleteCharacterResult{Deleted: true}, nil
	}
}

// listCharactersHandler executes a full listing.
func listCharactersHandler(svc *roster.Service) mcp.ToolHandlerFor[ListCharactersInput, ListCharactersResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ListCharactersInput) (*mcp.CallToolResult, ListCharactersResult, error) {
		chars, err := svc.ListAll(ctx)
		if err != nil {
			return nil, ListCharactersResult{}, err
		}
		return nil, ListCharactersResult{Characters: payloadsFromDomain(chars)}, nil
	}
}
