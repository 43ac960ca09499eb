package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Upsert inserts or replaces the profile for a user.
func (r *PGRepo) Upsert(ctx context.Context, profile Profile) error {
	const query = `
INSERT INTO profiles (
    user_id, display_name, email, photo_url, location, bio, position,
    institution, graduation_year, linkedin_url,
    skills, experience, education, languages, interests, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11::jsonb, $12::jsonb, $13::jsonb, $14::jsonb, $15::jsonb, now())
ON CONFLICT (user_id) DO UPDATE SET
  display_name = EXCLUDED.display_name,
  email = EXCLUDED.email,
  photo_url = EXCLUDED.photo_url,
  location = EXCLUDED.location,
  bio = EXCLUDED.bio,
  position = EXCLUDED.position,
  institution = EXCLUDED.institution,
  graduation_year = EXCLUDED.graduation_year,
  linkedin_url = EXCLUDED.linkedin_url,
  skills = EXCLUDED.skills,
  experience = EXCLUDED.experience,
  education = EXCLUDED.education,
  languages = EXCLUDED.languages,
  interests = EXCLUDED.interests,
  updated_at = now()`

	skills, err := marshalList(profile.Skills)
	if err != nil {
		return err
	}
	experience, err := marshalList(profile.Experience)
	if err != nil {
		return err
	}
	education, err := marshalList(profile.Education)
	if err != nil {
		return err
	}
	languages, err := marshalList(profile.Languages)
	if err != nil {
		return err
	}
	interests, err := marshalList(profile.Interests)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(ctx, query,
		profile.UserID,
		nullableString(profile.DisplayName),
		nullableString(profile.Email),
		nullableString(profile.PhotoURL),
		nullableString(profile.Location),
		nullableString(profile.Bio),
		nullableString(profile.Position),
		nullableString(profile.Institution),
		nullableString(profile.GraduationYear),
		nullableString(profile.LinkedInURL),
		skills,
		experience,
		education,
		languages,
		interests,
	)
	return err
}

// GetByUserID loads the profile for a user.
func (r *PGRepo) GetByUserID(ctx context.Context, userID string) (Profile, error) {
	const query = `
SELECT user_id, display_name, email, photo_url, location, bio, position,
       institution, graduation_year, linkedin_url,
       skills, experience, education, languages, interests, updated_at
FROM profiles
WHERE user_id = $1
LIMIT 1`

	var p Profile
	var displayName, email, photoURL, location, bio sql.NullString
	var position, institution, graduationYear, linkedinURL sql.NullString
	var skills, experience, education, languages, interests sql.NullString
	var updatedAt sql.NullTime

	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&p.UserID,
		&displayName,
		&email,
		&photoURL,
		&location,
		&bio,
		&position,
		&institution,
		&graduationYear,
		&linkedinURL,
		&skills,
		&experience,
		&education,
		&languages,
		&interests,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}

	p.DisplayName = displayName.String
	p.Email = email.String
	p.PhotoURL = photoURL.String
	p.Location = location.String
	p.Bio = bio.String
	p.Position = position.String
	p.Institution = institution.String
	p.GraduationYear = graduationYear.String
	p.LinkedInURL = linkedinURL.String
	p.Skills = unmarshalList(skills)
	p.Experience = unmarshalList(experience)
	p.Education = unmarshalList(education)
	p.Languages = unmarshalList(languages)
	p.Interests = unmarshalList(interests)
	if updatedAt.Valid {
		p.UpdatedAt = updatedAt.Time
	} else {
		p.UpdatedAt = time.Now().UTC()
	}
	return p, nil
}

func marshalList(vals []string) (string, error) {
	if vals == nil {
		vals = []string{}
	}
	payload, err := json.Marshal(vals)
	if err != nil {
		return "", fmt.Errorf("marshal list: %w", err)
	}
	return string(payload), nil
}

func unmarshalList(raw sql.NullString) []string {
	if !raw.Valid || raw.String == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(raw.String), &out); err != nil {
		return []string{}
	}
	return out
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
