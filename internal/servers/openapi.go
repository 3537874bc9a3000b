// Package servers declares the server routes: information, members, bans,
// roles and permissions.
package servers

import (
	"net/http"

	"github.com/JaimeStill/chat-api-docs/pkg/document"
)

// Register declares the Servers group.
func Register(b *document.Builder) {
	b.Group("Servers")

	serverParams := document.Parameters(
		document.Parameter("server", "Server ID", document.Ref("Id")),
	)
	memberParams := document.Parameters(
		document.Parameter("server", "Server ID", document.Ref("Id")),
		document.Parameter("member", "Member ID", document.Ref("Id")),
	)
	roleParams := document.Parameters(
		document.Parameter("server", "Server ID", document.Ref("Id")),
		document.Parameter("role", "Role ID", document.Ref("Id")),
	)

	information(b, serverParams)
	members(b, serverParams, memberParams)
	permissions(b, serverParams, roleParams)
}

func information(b *document.Builder, serverParams document.ParameterFragment) {
	b.Tag("Server Information", "Query and fetch servers on Revolt")

	b.Resource("/servers/:server", document.Methods{
		http.MethodGet: b.RouteAuthenticated(
			"Fetch Server",
			"Retrieve a server.",
			serverParams,
			document.Success("Retrieved server.", document.Ref("Server")),
		),
		http.MethodPatch: b.RouteAuthenticated(
			"Edit Server",
			"Edit a server object.",
			serverParams,
			document.Body("Requested changes to server object.", b.Schema(`
				import type { Category, SystemMessageChannels } from './Servers';
				import type { AutumnId } from './_common';

				interface EditServer {
					/**
					 * Server name
					 * @minLength 1
					 * @maxLength 32
					 **/
					name: string;

					/**
					 * Server description
					 * @minLength 0
					 * @maxLength 1024
					 **/
					description?: string;

					icon?: AutumnId;

					banner?: AutumnId;

					/**
					 * Server categories
					 */
					categories?: Category[];

					/**
					 * System message channels
					 */
					system_messages?: SystemMessageChannels;

					/**
					 * Field to remove from channel object
					 */
					remove?: 'Icon' | 'Banner' | 'Description';
				}
			`)),
			document.Success("Succesfully changed channel object.", nil),
		),
		http.MethodDelete: b.RouteAuthenticated(
			"Delete / Leave Server",
			"Deletes a server if owner otherwise leaves.",
			serverParams,
			document.Success("Deleted Server", nil),
		),
	})

	b.Resource("/servers/create", document.Methods{
		http.MethodPost: b.RouteAuthenticated(
			"Create Server",
			"Create a new server.",
			document.Body("Server Data", b.Schema(`
				import { Id, Nonce } from './_common';

				interface ServerData {
					/**
					 * Group name
					 * @minLength 1
					 * @maxLength 32
					 */
					name: string;

					/**
					 * Group description
					 * @minLength 0
					 * @maxLength 1024
					 */
					description?: string;

					nonce: Nonce;
				}
			`)),
			document.Success("Server", document.Ref("Server")),
		),
	})

	b.Resource("/servers/:server/channels", document.Methods{
		http.MethodPost: b.RouteAuthenticated(
			"Create Channel",
			"Create a new Text or Voice channel.",
			serverParams,
			document.Body("Channel Data", b.Schema(`
				import { Id, Nonce } from './_common';

				interface ChannelData {
					/**
					 * Channel type
					 */
					type: 'Text' | 'Voice';

					/**
					 * Channel name
					 * @minLength 1
					 * @maxLength 32
					 */
					name: string;

					/**
					 * Channel description
					 * @minLength 0
					 * @maxLength 1024
					 */
					description?: string;

					nonce: Nonce;
				}
			`)),
			document.Success("Channel", document.Ref("Channel")),
		),
	})

	b.Resource("/servers/:server/invites", document.Methods{
		http.MethodGet: b.RouteAuthenticated(
			"Fetch Invites",
			"Fetch all server invites.",
			serverParams,
			document.Success("Server Invites", b.Schema(`
				import { Id } from './_common';

				type ServerInvites = {
					/**
					 * Invite Code
					 */
					code: string;

					/**
					 * ID of the user who created this invite.
					 */
					creator: Id;

					/**
					 * ID of the channel this invite is for.
					 */
					channel: Id;
				}
			`)),
		),
	})
}

func members(b *document.Builder, serverParams, memberParams document.ParameterFragment) {
	b.Tag("Server Members", "Find and edit server members")

	b.Resource("/servers/:server/members/:member", document.Methods{
		http.MethodGet: b.RouteAuthenticated(
			"Fetch Member",
			"Retrieve a member.",
			memberParams,
			document.Success("Retrieved member.", document.Ref("Member")),
		),
		http.MethodPatch: b.RouteAuthenticated(
			"Edit Member",
			"Edit a member object.",
			memberParams,
			document.Body("Requested changes to server object.", b.Schema(`
				import type { AutumnId, Id } from './_common';

				interface EditMember {
					/**
					 * Member nickname
					 * @minLength 1
					 * @maxLength 32
					 **/
					nickname: string;

					avatar?: AutumnId;

					/**
					 * Array of role IDs
					 */
					roles?: Id[];

					/**
					 * Field to remove from channel object
					 */
					remove?: 'Nickname' | 'Avatar';
				}
			`)),
			document.Success("Succesfully changed member object.", nil),
		),
		http.MethodDelete: b.RouteAuthenticated(
			"Kick Member",
			"Removes a member from the server.",
			memberParams,
			document.Success("Removed Member", nil),
		),
	})

	b.Resource("/servers/:server/members", document.Methods{
		http.MethodGet: b.Route(
			"Fetch Members",
			"Fetch all server members.",
			serverParams,
			document.Success("Server Members", b.Schema(`
				import { Member } from './Servers';
				import { User } from './Users';

				interface ServerMembers {
					members: Member[],
					users: User[]
				}
			`)),
		),
	})

	b.Resource("/servers/:server/bans/:member", document.Methods{
		http.MethodPut: b.RouteAuthenticated(
			"Ban User",
			"Ban a user by their ID.",
			memberParams,
			document.Body("Ban Data", b.Schema(`
				interface BanData {
					/**
					 * Ban reason
					 * @minLength 1
					 * @maxLength 1024
					 */
					reason?: string
				}
			`)),
			document.Success("Banned user.", nil),
		),
		http.MethodDelete: b.RouteAuthenticated(
			"Unban User",
			"Removes a user's ban.",
			memberParams,
			document.Success("Unbanned user.", nil),
		),
	})

	b.Resource("/servers/:server/bans", document.Methods{
		http.MethodGet: b.RouteAuthenticated(
			"Fetch Bans",
			"Fetch all bans on server.",
			serverParams,
			document.Success("Bans", b.Schema(`
				import { Ban } from './Servers';
				type ServerBans = Ban[];
			`)),
		),
	})
}

func permissions(b *document.Builder, serverParams, roleParams document.ParameterFragment) {
	b.Tag("Server Permissions", "Manage permissions for servers")

	serverPermissions := document.Body("Server Permissions", b.Schema(`
		interface ServerPermissions {
			/**
			 * Permission values
			 */
			permissions: {
				/**
				 * Server permission
				 */
				server: number,

				/**
				 * Channel permission
				 */
				channel: number
			}
		}
	`))

	b.Resource("/servers/:server/permissions/:role", document.Methods{
		http.MethodPut: b.RouteAuthenticated(
			"Set Role Permission",
			"Sets permissions for the specified role in this server.",
			roleParams,
			serverPermissions,
			document.Success("Successfully updated permissions.", nil),
		),
	})

	b.Resource("/servers/:server/permissions/default", document.Methods{
		http.MethodPut: b.RouteAuthenticated(
			"Set Default Permission",
			"Sets permissions for the default role in this server.",
			serverParams,
			serverPermissions,
			document.Success("Successfully updated permissions.", nil),
		),
	})

	b.Resource("/servers/:server/roles", document.Methods{
		http.MethodPost: b.RouteAuthenticated(
			"Create Role",
			"Creates a new server role.",
			serverParams,
			document.Body("Role Data", b.Schema(`
				interface RoleData {
					/**
					 * Role name
					 * @minLength 1
					 * @maxLength 32
					 */
					name: string;
				}
			`)),
			document.Success("New Role", b.Schema(`
				import { Id } from './_common';
				import { PermissionTuple } from './Servers';

				interface NewRole {
					/**
					 * Role ID
					 */
					id: Id;

					permissions: PermissionTuple;
				}
			`)),
		),
	})

	b.Resource("/servers/:server/roles/:role", document.Methods{
		http.MethodDelete: b.RouteAuthenticated(
			"Delete Role",
			"Deletes a server role by ID.",
			roleParams,
			document.Success("Successfully deleted role.", nil),
		),
	})
}
