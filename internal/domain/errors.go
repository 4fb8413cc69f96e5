package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgUnknownProfession = "unknown profession"
	ErrMsgUnknownTool       = "unknown tool"
	ErrMsgUnknownMaterial   = "unknown material"
	ErrMsgUnknownPiece      = "unknown piece"
	ErrMsgUnknownAccessory  = "unknown accessory kind"
	ErrMsgInvalidTier       = "tier out of range"
	ErrMsgRarityNotAllowed  = "rarity not allowed at this tier"
	ErrMsgMetaKeyNotFound   = "meta key not found"
)

// Common domain errors.
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for context.
var (
	ErrUnknownProfession = errors.New(ErrMsgUnknownProfession)
	ErrUnknownTool       = errors.New(ErrMsgUnknownTool)
	ErrUnknownMaterial   = errors.New(ErrMsgUnknownMaterial)
	ErrUnknownPiece      = errors.New(ErrMsgUnknownPiece)
	ErrUnknownAccessory  = errors.New(ErrMsgUnknownAccessory)
	ErrInvalidTier       = errors.New(ErrMsgInvalidTier)
	ErrRarityNotAllowed  = errors.New(ErrMsgRarityNotAllowed)
	ErrMetaKeyNotFound   = errors.New(ErrMsgMetaKeyNotFound)
)
