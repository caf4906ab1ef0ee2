package domain

type User struct {
	ID        string `db:"id" json:"id"`
	Username  string `db:"username" json:"username"`
	Hash      string `db:"password_hash" json:"-"`
	FullName  string `db:"full_name" json:"fullName"`
	Email     string `db:"email" json:"email"`
	AvatarURL string `db:"avatar_url" json:"avatarUrl"`
	CreatedAt string `db:"created_at" json:"createdAt"`
}
