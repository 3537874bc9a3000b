// Package common declares the component schemas and security schemes shared
// by every route group.
package common

import (
	"github.com/JaimeStill/chat-api-docs/pkg/document"
	"github.com/JaimeStill/chat-api-docs/pkg/openapi"
)

// Security schemes accepted by authenticated routes.
var securitySchemes = []struct {
	name   string
	scheme *openapi.SecurityScheme
}{
	{
		name: "SessionToken",
		scheme: &openapi.SecurityScheme{
			Type:        "apiKey",
			In:          "header",
			Name:        "x-session-token",
			Description: "Session token issued on login",
		},
	},
	{
		name: "BotToken",
		scheme: &openapi.SecurityScheme{
			Type:        "apiKey",
			In:          "header",
			Name:        "x-bot-token",
			Description: "Token of a bot account",
		},
	},
}

// Register declares the shared schemas and security schemes.
func Register(b *document.Builder) {
	for _, s := range securitySchemes {
		b.SecurityScheme(s.name, s.scheme)
	}
	b.Schemas(schemas...)
}

var schemas = []string{
	`
	/**
	 * Unique identifier (ULID)
	 * @pattern ^[0-9A-HJKMNP-TV-Z]{26}$
	 * @example "01FD58YK5W7QRV5H3D64NTQYRM"
	 */
	type Id = string;
	`,
	`
	/**
	 * File identifier issued by the file server
	 * @minLength 1
	 * @maxLength 128
	 */
	type AutumnId = string;
	`,
	`
	/**
	 * Client-generated value used to deduplicate requests
	 * @minLength 1
	 * @maxLength 36
	 */
	type Nonce = string;
	`,
	`
	/**
	 * Server and channel permission bitfields
	 * @example [1, 2]
	 */
	type PermissionTuple = [number, number];
	`,
	`
	interface File {
		_id: AutumnId;
		/** Bucket the file was uploaded to */
		tag: 'attachments' | 'avatars' | 'backgrounds' | 'icons' | 'banners';
		filename: string;
		content_type: string;
		/** @minimum 0 */
		size: integer;
		deleted?: boolean;
	}
	`,
	`
	import type { Id } from './_common';

	interface Category {
		/**
		 * Category identifier
		 * @minLength 1
		 * @maxLength 32
		 */
		id: string;

		/**
		 * Category title
		 * @minLength 1
		 * @maxLength 32
		 */
		title: string;

		/** Channels in this category */
		channels: Id[];
	}
	`,
	`
	import type { Id } from './_common';

	/** Channels that receive system messages; unset fields are disabled */
	interface SystemMessageChannels {
		user_joined?: Id;
		user_left?: Id;
		user_kicked?: Id;
		user_banned?: Id;
	}
	`,
	`
	import type { PermissionTuple } from './Servers';

	interface Role {
		/** @minLength 1 @maxLength 32 */
		name: string;
		permissions: PermissionTuple;
		/** Valid CSS colour */
		colour?: string;
		/** Whether members are displayed separately */
		hoist?: boolean;
		/** Ranking, lower is higher priority */
		rank?: integer;
	}
	`,
	`
	import type { Id } from './_common';
	import type { Category, Role, SystemMessageChannels, PermissionTuple } from './Servers';

	interface Server {
		_id: Id;
		/** User who owns the server */
		owner: Id;

		/** @minLength 1 @maxLength 32 */
		name: string;

		/** @minLength 0 @maxLength 1024 */
		description?: string;

		channels: Id[];
		categories?: Category[];
		system_messages?: SystemMessageChannels;

		/** Roles keyed by role id */
		roles?: Record<string, Role>;

		default_permissions: PermissionTuple;
		icon?: File;
		banner?: File;
		nsfw?: boolean;
	}
	`,
	`
	import type { Id } from './_common';

	/** Composite key of a member */
	interface MemberId {
		server: Id;
		user: Id;
	}
	`,
	`
	import type { Id } from './_common';

	interface Member {
		_id: MemberId;

		/** @minLength 1 @maxLength 32 */
		nickname?: string;

		avatar?: File;

		/** Role ids assigned to this member */
		roles?: Id[];
	}
	`,
	`
	interface Ban {
		_id: MemberId;

		/** @minLength 1 @maxLength 1024 */
		reason?: string;
	}
	`,
	`
	import type { Id } from './_common';

	interface Channel {
		_id: Id;
		channel_type: 'SavedMessages' | 'DirectMessage' | 'Group' | 'TextChannel' | 'VoiceChannel';
		server?: Id;

		/** @minLength 1 @maxLength 32 */
		name?: string;

		/** @minLength 0 @maxLength 1024 */
		description?: string;

		icon?: File;
		last_message_id?: Id | null;
		nsfw?: boolean;
	}
	`,
	`
	import type { Id } from './_common';

	interface User {
		_id: Id;

		/**
		 * Username
		 * @pattern ^[^\n\r@:]+$
		 */
		username: string;

		avatar?: File;
		relationship?: 'None' | 'User' | 'Friend' | 'Outgoing' | 'Incoming' | 'Blocked' | 'BlockedOther';
		online?: boolean;

		/** Account flags bitfield */
		flags?: integer;

		/** Present when the user is a bot */
		bot?: {
			owner: Id;
		};
	}
	`,
}
