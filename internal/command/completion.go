// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/bgarena/bgarena/internal/meta"
)

const bashCompletionScript = `# bash completion for bgarena
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_bgarena()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "games plan shell completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local display="--color -c --titles -t --padding"
    local common="--catalog -k --desc -d --filter -f --output -o --schema --sort -s $display"

    case "$cmd" in
        games)
            local opts="$common"
            ;;
        plan)
            local opts="$common --add -a --remove -r --save"
            ;;
        shell)
            local opts="--catalog -k --sort -s --desc -d $display"
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    case "$prev" in
        --output|-o)
            COMPREPLY=( $(compgen -W "text json yaml names" -- "$cur") )
            return 0
            ;;
        --sort|-s)
            COMPREPLY=( $(compgen -W "name year min_players max_players min_time max_time rating difficulty rank" -- "$cur") )
            return 0
            ;;
        --catalog|-k|--save)
            COMPREPLY=( $(compgen -f -- "$cur") )
            return 0
            ;;
    esac

    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
}

complete -F _bgarena bgarena
`

const zshCompletionScript = `#compdef bgarena

_bgarena() {
  local -a cmds
  cmds=(
    'games:filter and sort the game catalog'
    'plan:build a plan from the filtered catalog'
    'shell:interactive planning session'
    'completion:generate shell completion script'
  )

  local -a columns
  columns=(name year min_players max_players min_time max_time rating difficulty rank)

  local -a display
  display=(
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-t --titles)'{-t,--titles}'[show titles]'
  '--padding[extra column padding]:padding'
  )

  local -a common
  common=(
  $display
  '(-k --catalog)'{-k,--catalog}'[game catalog]:catalog:_files'
  '(-d --desc)'{-d,--desc}'[sort descending]'
  '(-f --filter)'{-f,--filter}'[filter conditions]:filter'
  '(-o --output)'{-o,--output}'[output format]:format:(text json yaml names)'
  '(-s --sort)'{-s,--sort}'[sort column]:column:($columns)'
  '--schema[list columns and operators]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'bgarena commands' cmds
    return
  fi

  case $words[2] in
    games)
      _arguments -C $common
      ;;
    plan)
      _arguments -C \
        $common \
        '*'{-a,--add}'[add selector]:selector' \
        '*'{-r,--remove}'[remove selector]:selector' \
        '--save[write plan names]:path:_files'
      ;;
    shell)
      _arguments -C \
        $display \
        '(-k --catalog)'{-k,--catalog}'[game catalog]:catalog:_files' \
        '(-d --desc)'{-d,--desc}'[sort descending]' \
        '(-s --sort)'{-s,--sort}'[sort column]:column:($columns)'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _bgarena bgarena
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	if shell == "" {
		// Detect from SHELL.
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		fmt.Fprint(writer(cmd), bashCompletionScript)
	case "zsh":
		fmt.Fprint(writer(cmd), zshCompletionScript)
	default:
		fmt.Fprintln(errWriter(cmd), "usage: bgarena completion [bash|zsh]")
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "bgarena completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
