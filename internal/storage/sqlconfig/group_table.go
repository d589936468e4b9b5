package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
)

var _ IGroupTable = (*GroupsTable)(nil)

type GroupsTable struct {
	db Queryer
}

func NewGroupsTable(db Queryer) *GroupsTable {
	return &GroupsTable{db: db}
}

// Insert creates a new group and returns its generated ID. Adding the owner
// as a member is a separate statement so both run inside one operator
// transaction.
func (t *GroupsTable) Insert(ctx context.Context, create *GroupCreate) (uuid.UUID, error) {
	const query = `
		INSERT INTO groups (name, description, owner_id)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id uuid.UUID
	err := t.db.QueryRowContext(ctx, query,
		create.Name,
		create.Description,
		create.OwnerID,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// FindByID retrieves a group by primary key. Returns (nil, nil) when absent.
func (t *GroupsTable) FindByID(ctx context.Context, id uuid.UUID) (*Group, error) {
	const query = `
		SELECT id, name, description, owner_id, created_at
		FROM groups
		WHERE id = $1`

	var group Group
	var description sql.NullString
	err := t.db.QueryRowContext(ctx, query, id).Scan(
		&group.ID,
		&group.Name,
		&description,
		&group.OwnerID,
		&group.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	group.Description = description.String
	return &group, nil
}

// ListForUser returns groups the user owns or belongs to, ordered by name.
func (t *GroupsTable) ListForUser(ctx context.Context, userID uuid.UUID) ([]*Group, error) {
	const query = `
		SELECT DISTINCT g.id, g.name, g.description, g.owner_id, g.created_at
		FROM groups g
		LEFT JOIN group_members gm ON gm.group_id = g.id
		WHERE g.owner_id = $1 OR gm.user_id = $1
		ORDER BY g.name ASC`

	rows, err := t.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []*Group
	for rows.Next() {
		var group Group
		var description sql.NullString
		if err := rows.Scan(
			&group.ID,
			&group.Name,
			&description,
			&group.OwnerID,
			&group.CreatedAt,
		); err != nil {
			return nil, err
		}
		group.Description = description.String
		groups = append(groups, &group)
	}
	return groups, rows.Err()
}

// Update changes a group's name and description.
func (t *GroupsTable) Update(ctx context.Context, id uuid.UUID, update *GroupUpdate) error {
	const query = `
		UPDATE groups
		SET name = $2, description = $3
		WHERE id = $1`

	_, err := t.db.ExecContext(ctx, query, id, update.Name, update.Description)
	return err
}

// Delete removes a group and, via the schema, its membership rows.
func (t *GroupsTable) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM groups WHERE id = $1`

	_, err := t.db.ExecContext(ctx, query, id)
	return err
}

// AddMember associates a user with a group. Adding an existing member is a
// no-op.
func (t *GroupsTable) AddMember(ctx context.Context, groupID, userID uuid.UUID) error {
	const query = `
		INSERT INTO group_members (group_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (group_id, user_id) DO NOTHING`

	_, err := t.db.ExecContext(ctx, query, groupID, userID)
	return err
}

// RemoveMember removes a user's membership row.
func (t *GroupsTable) RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error {
	const query = `
		DELETE FROM group_members
		WHERE group_id = $1 AND user_id = $2`

	_, err := t.db.ExecContext(ctx, query, groupID, userID)
	return err
}

// ListMembers returns the group's members with display names resolved.
func (t *GroupsTable) ListMembers(ctx context.Context, groupID uuid.UUID) ([]*GroupMember, error) {
	const query = `
		SELECT u.id, u.first_name, u.last_name
		FROM group_members gm
		JOIN users u ON u.id = gm.user_id
		WHERE gm.group_id = $1
		ORDER BY u.last_name ASC, u.first_name ASC`

	rows, err := t.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*GroupMember
	for rows.Next() {
		var member GroupMember
		if err := rows.Scan(&member.UserID, &member.FirstName, &member.LastName); err != nil {
			return nil, err
		}
		members = append(members, &member)
	}
	return members, rows.Err()
}

// MemberCount counts all accounts associated with the group, owner included.
// The UNION guards against groups created before owners were auto-enrolled.
func (t *GroupsTable) MemberCount(ctx context.Context, groupID uuid.UUID) (int, error) {
	const query = `
		SELECT COUNT(*) FROM (
			SELECT user_id FROM group_members WHERE group_id = $1
			UNION
			SELECT owner_id FROM groups WHERE id = $1
		) accounts`

	var count int
	if err := t.db.QueryRowContext(ctx, query, groupID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// IsMember reports whether the user owns or belongs to the group.
func (t *GroupsTable) IsMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM group_members WHERE group_id = $1 AND user_id = $2
			UNION
			SELECT 1 FROM groups WHERE id = $1 AND owner_id = $2
		)`

	var isMember bool
	if err := t.db.QueryRowContext(ctx, query, groupID, userID).Scan(&isMember); err != nil {
		return false, err
	}
	return isMember, nil
}
