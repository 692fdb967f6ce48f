// Package apperrors provides structured, code-carrying errors for the
// framework. Codes are machine-readable so the host engine can classify
// failures without parsing messages.
package apperrors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Capability config errors
	CodeCapabilityMissingName   Code = "CAPABILITY_MISSING_NAME"
	CodeCapabilityMissingID     Code = "CAPABILITY_MISSING_ID"
	CodeCapabilityDuplicateCode Code = "CAPABILITY_DUPLICATE_CODE"
	CodeCapabilityInvalidJSON   Code = "CAPABILITY_INVALID_JSON"

	// Manifest errors
	CodeManifestMissingModID     Code = "MANIFEST_MISSING_MOD_ID"
	CodeManifestMissingName      Code = "MANIFEST_MISSING_NAME"
	CodeManifestInvalidAmount    Code = "MANIFEST_INVALID_AMOUNT"
	CodeManifestInvalidJSON      Code = "MANIFEST_INVALID_JSON"
	CodeManifestDuplicateModID   Code = "MANIFEST_DUPLICATE_MOD_ID"
	CodeManifestConflict         Code = "MANIFEST_CONFLICT"
	CodeManifestIDsNotAssigned   Code = "MANIFEST_IDS_NOT_ASSIGNED"
	CodeManifestFolderUnreadable Code = "MANIFEST_FOLDER_UNREADABLE"

	// Rule installation errors
	CodeRulesUnknownLocation Code = "RULES_UNKNOWN_LOCATION"
	CodeRulesUnknownItem     Code = "RULES_UNKNOWN_ITEM"
	CodeRulesInvalidScript   Code = "RULES_INVALID_SCRIPT"

	// World lifecycle errors
	CodeWorldHookAlreadyRan Code = "WORLD_HOOK_ALREADY_RAN"
	CodeWorldNoEngine       Code = "WORLD_NO_ENGINE"
	CodeWorldNotFound       Code = "WORLD_NOT_FOUND"
)
