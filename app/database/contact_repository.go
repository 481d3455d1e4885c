package database

import (
	"fmt"
	"time"
)

// contactRepository handles database operations for contact submissions
type contactRepository struct {
	db *DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *DB) ContactRepository {
	return &contactRepository{db: db}
}

// CreateContact inserts a new submission. Rows always start with status "new"
// and both timestamps set to the current time.
func (r *contactRepository) CreateContact(name, email, subject, message string) (*Contact, error) {
	now := time.Now().UTC()

	result, err := r.db.Exec(`
		INSERT INTO contacts (name, email, subject, message, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, name, email, subject, message, StatusNew, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get contact id: %w", err)
	}

	return &Contact{
		ID:        id,
		Name:      name,
		Email:     email,
		Subject:   subject,
		Message:   message,
		Status:    StatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// GetAllContacts returns every contact row, newest first
func (r *contactRepository) GetAllContacts() ([]Contact, error) {
	rows, err := r.db.Query(`
		SELECT id, name, email, subject, message, status, created_at, updated_at
		FROM contacts
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get contacts: %w", err)
	}
	defer rows.Close()

	var contacts []Contact
	for rows.Next() {
		var contact Contact
		err := rows.Scan(
			&contact.ID, &contact.Name, &contact.Email, &contact.Subject,
			&contact.Message, &contact.Status, &contact.CreatedAt, &contact.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact row: %w", err)
		}
		contacts = append(contacts, contact)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact rows: %w", err)
	}

	return contacts, nil
}

// UpdateContactStatus sets a contact's status and refreshes updated_at.
// Returns false when no row has the given id. Only the status column is
// mutable; all submitted fields are immutable after creation.
func (r *contactRepository) UpdateContactStatus(id int64, status string) (bool, error) {
	if !ValidContactStatus(status) {
		return false, fmt.Errorf("invalid contact status: %s", status)
	}

	result, err := r.db.Exec(`
		UPDATE contacts
		SET status = ?, updated_at = ?
		WHERE id = ?
	`, status, time.Now().UTC(), id)
	if err != nil {
		return false, fmt.Errorf("failed to update contact status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected > 0, nil
}

// GetContactCount returns the total number of contact rows
func (r *contactRepository) GetContactCount() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM contacts").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get contact count: %w", err)
	}
	return count, nil
}
