package mcpserver

import "github.com/modelcontextprotocol/go-sdk/mcp"

// createCharacterTool defines the tool schema for character creation.
func createCharacterTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "createCharacter",
		Description: "Create a new character with the given details.",
	}
}

// getCharacterTool defines the tool schema for single-character lookup.
func getCharacterTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "getCharacter",
		Description: "Retrieve a character by their ID from the database",
	}
}

// playerCharactersTool defines the tool schema for per-player queries.
func playerCharactersTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "getCharactersByPlayerId",
		Description: "Retrieve all characters belonging to a specific player",
	}
}

// updateCharacterTool defines the tool schema for full-record updates.
func updateCharacterTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "updateCharacter",
		Description: "Update an existing character's details.",
	}
}

// addExperienceTool defines the tool schema for experience grants.
func addExperienceTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "addExperience",
		Description: "Add experience to a character and handle level progression.",
	}
}

// progressionInfoTool defines the tool schema for progression reports.
func progressionInfoTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "getProgressionInfo",
		Description: "Get information about a character's progression during a Game Session.",
	}
}

// deleteCharacterTool defines the tool schema for character deletion.
func deleteCharacterTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "deleteCharacter",
		Description: "Delete a character by their ID.",
	}
}

// listCharactersTool defines the tool schema for full listings.
func listCharactersTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "getAllCharacters",
		Description: "Retrieve every stored character.",
	}
}
