package ports

import "github.com/AntonioJCosta/aliases/internal/core/domain/alias"

/*
AliasFileRepository defines the interface for reading and creating .aliases
files. This is a driven port, implemented by a repository adapter that
understands the on-disk alias file format.
*/
type AliasFileRepository interface {
	/*
	   ReadAliasFile parses the alias file at path.
	   A missing file is reported with an error wrapping fs.ErrNotExist.
	   Malformed entries do not fail the read; they are returned in File.Issues.
	*/
	ReadAliasFile(path string) (alias.File, error)

	/*
	   CreateAliasFile writes content to path only if no file exists there.
	   It returns true if the file was created, false if one already existed,
	   and an error if the operation failed.
	*/
	CreateAliasFile(path string, content []byte) (bool, error)

	// AliasFileExists reports whether a regular alias file exists at path.
	AliasFileExists(path string) (bool, error)
}
