package commands

import (
	"errors"
	"strings"

	"dispatchdesk/internal/core/domain/model/kernel"
	"dispatchdesk/internal/pkg/errs"
	"dispatchdesk/internal/pkg/guard"
)

var (
	ErrQuickAddRecordCommandIsNotConstructed = errors.New(
		"QuickAddRecordCommand must be created via NewQuickAddRecordCommand constructor",
	)
	ErrPackageIDIsRequired = errs.NewValueIsRequiredError("package id")
)

// QuickAddRecordCommand adds one record typed into the quick-add form.
// All fields are trimmed and the amount is normalized like a scanned one.
type QuickAddRecordCommand struct { //nolint:recvcheck //using for validation
	sessionID     kernel.UUID
	packageID     string
	recipientName string
	phone         string
	address       string
	amount        kernel.Amount

	guard guard.ConstructorGuard
}

// NewQuickAddRecordCommand creates a quick-add command. The package ID is
// required; the other fields may be empty.
func NewQuickAddRecordCommand(
	sessionID kernel.UUID,
	packageID, recipientName, phone, address, amount string,
) (QuickAddRecordCommand, error) {
	cmd := QuickAddRecordCommand{
		recipientName: strings.TrimSpace(recipientName),
		phone:         strings.TrimSpace(phone),
		address:       strings.TrimSpace(address),
		amount:        kernel.ParseAmount(amount),
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setPackageID(packageID),
	); err != nil {
		return QuickAddRecordCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c QuickAddRecordCommand) Validate() error {
	return c.guard.Validate(ErrQuickAddRecordCommandIsNotConstructed)
}

// SessionID returns the target session.
func (c QuickAddRecordCommand) SessionID() kernel.UUID { return c.sessionID }

// PackageID returns the package ID.
func (c QuickAddRecordCommand) PackageID() string { return c.packageID }

// RecipientName returns the recipient name.
func (c QuickAddRecordCommand) RecipientName() string { return c.recipientName }

// Phone returns the recipient phone.
func (c QuickAddRecordCommand) Phone() string { return c.phone }

// Address returns the delivery address.
func (c QuickAddRecordCommand) Address() string { return c.address }

// Amount returns the normalized amount.
func (c QuickAddRecordCommand) Amount() kernel.Amount { return c.amount }

func (c *QuickAddRecordCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *QuickAddRecordCommand) setPackageID(packageID string) error {
	packageID = strings.TrimSpace(packageID)
	if packageID == "" {
		return ErrPackageIDIsRequired
	}

	c.packageID = packageID
	return nil
}
