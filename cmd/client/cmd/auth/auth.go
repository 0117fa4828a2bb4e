package auth

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// GroupID - группа команд авторизации в справке hubctl
const GroupID = "auth"

var Group = &cobra.Group{ID: GroupID, Title: "Авторизация:"}

// Commands возвращает команды управления пользователем
func Commands() []*cobra.Command {
	cmds := []*cobra.Command{LoginCmd, LogoutCmd, MeCmd, RegisterCmd, ChangePasswordCmd}
	for _, c := range cmds {
		c.GroupID = GroupID
	}
	return cmds
}

var stdin = bufio.NewReader(os.Stdin)

func prompt(label string) string {
	fmt.Print(label)
	line, _ := stdin.ReadString('\n')
	return strings.TrimSpace(line)
}

func readPassword(label string) (string, error) {
	fmt.Print(label)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("ошибка чтения пароля: %w", err)
	}
	return string(password), nil
}
